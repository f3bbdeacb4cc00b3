package mention_test

import (
	"errors"
	"testing"

	"github.com/okian/mediaimpact/internal/domain/mention"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNameMatchers(t *testing.T) {
	Convey("Given the substring name matcher", t, func() {
		m := mention.SubstringMatcher{}

		So(m.Contains("a great season for everyone", "son"), ShouldBeTrue)
		So(m.Contains("arsenal win", "arsenal"), ShouldBeTrue)
		So(m.Contains("anything", ""), ShouldBeFalse)
	})

	Convey("Given the word name matcher", t, func() {
		m := mention.WordMatcher{}

		Convey("Then names must stand on word boundaries", func() {
			So(m.Contains("a great season for everyone", "son"), ShouldBeFalse)
			So(m.Contains("son scores again", "son"), ShouldBeTrue)
			So(m.Contains("what a finish, son!", "son"), ShouldBeTrue)
			So(m.Contains("heung-min son.", "son"), ShouldBeTrue)
		})

		Convey("Then a later boundary match is found after a failed one", func() {
			So(m.Contains("season over, son rests", "son"), ShouldBeTrue)
		})

		Convey("Then multi-word and accented names work", func() {
			So(m.Contains("goal by martin ødegaard today", "martin ødegaard"), ShouldBeTrue)
			So(m.Contains("ødegaardian vision", "ødegaard"), ShouldBeFalse)
		})
	})

	Convey("Given name matcher names", t, func() {
		sub, err := mention.NewNameMatcher("")
		So(err, ShouldBeNil)
		So(sub, ShouldHaveSameTypeAs, mention.SubstringMatcher{})

		word, err := mention.NewNameMatcher("WORD")
		So(err, ShouldBeNil)
		So(word, ShouldHaveSameTypeAs, mention.WordMatcher{})

		_, err = mention.NewNameMatcher("fuzzy")
		So(errors.Is(err, mention.ErrUnknownNameMatcher), ShouldBeTrue)
	})
}
