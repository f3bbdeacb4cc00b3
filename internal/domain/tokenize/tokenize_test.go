package tokenize_test

import (
	"testing"

	"github.com/okian/mediaimpact/internal/domain/tokenize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSentences(t *testing.T) {
	Convey("Given match report text", t, func() {
		Convey("When it has several terminated sentences", func() {
			got := tokenize.Sentences("Arsenal won 2-0. Saka scored twice! Was it deserved? Yes.")

			Convey("Then each sentence is returned trimmed", func() {
				So(got, ShouldResemble, []string{
					"Arsenal won 2-0.",
					"Saka scored twice!",
					"Was it deserved?",
					"Yes.",
				})
			})
		})

		Convey("When it contains decimals and abbreviations", func() {
			got := tokenize.Sentences("Mr. Arteta praised the 2.5 xG tally vs. Chelsea. Next up is J. Smith's side.")

			Convey("Then they do not split the sentence", func() {
				So(got, ShouldResemble, []string{
					"Mr. Arteta praised the 2.5 xG tally vs. Chelsea.",
					"Next up is J. Smith's side.",
				})
			})
		})

		Convey("When a single capital letter ends a sentence", func() {
			got := tokenize.Sentences("Arsenal switched to Plan A. Then it worked. Goal by T. Partey. Option b. Next game.")

			Convey("Then only an initial before a name keeps the sentence open", func() {
				So(got, ShouldResemble, []string{
					"Arsenal switched to Plan A.",
					"Then it worked.",
					"Goal by T. Partey.",
					"Option b.",
					"Next game.",
				})
			})
		})

		Convey("When punctuation is repeated or quoted", func() {
			got := tokenize.Sentences(`He said "what a goal!" Then silence... The end`)

			Convey("Then the run is kept with its sentence", func() {
				So(got, ShouldResemble, []string{
					`He said "what a goal!"`,
					"Then silence...",
					"The end",
				})
			})
		})

		Convey("When paragraphs are separated by a blank line", func() {
			got := tokenize.Sentences("First paragraph without stop\n\nSecond one")

			Convey("Then the break ends the sentence", func() {
				So(got, ShouldResemble, []string{"First paragraph without stop", "Second one"})
			})
		})

		Convey("When the text is empty or blank", func() {
			So(tokenize.Sentences(""), ShouldBeEmpty)
			So(tokenize.Sentences("   \n "), ShouldBeEmpty)
		})
	})
}

func TestWords(t *testing.T) {
	Convey("Given a sentence with punctuation", t, func() {
		got := tokenize.Words("A World-Class finish, didn't he? 'Clinical' -- 3 goals")

		Convey("Then lowercase tokens keep inner hyphens and apostrophes", func() {
			So(got, ShouldResemble, []string{"a", "world-class", "finish", "didn't", "he", "clinical", "3", "goals"})
		})
	})
}

func TestStripMarkup(t *testing.T) {
	Convey("Given article bodies", t, func() {
		Convey("When the body is HTML", func() {
			got := tokenize.StripMarkup(`<div><p>Great win.</p><script>var x = 1;</script><p>Solid   defence.</p></div>`)

			Convey("Then only visible text remains, paragraph breaks kept", func() {
				So(got, ShouldEqual, "Great win.\n\nSolid defence.")
			})
		})

		Convey("When the body is plain text", func() {
			got := tokenize.StripMarkup("  Plain\ttext  here ")

			Convey("Then whitespace is collapsed", func() {
				So(got, ShouldEqual, "Plain text here")
			})
		})

		Convey("When the body is empty", func() {
			So(tokenize.StripMarkup(""), ShouldEqual, "")
		})
	})
}
