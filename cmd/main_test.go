package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func execute(args ...string) (string, error) {
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the command tree", t, func() {
		root := newRootCmd()

		convey.Convey("Then it exposes run, seed and verify", func() {
			names := make([]string, 0, len(root.Commands()))
			for _, c := range root.Commands() {
				names = append(names, c.Name())
			}
			convey.So(names, convey.ShouldContain, "run")
			convey.So(names, convey.ShouldContain, "seed")
			convey.So(names, convey.ShouldContain, "verify")
		})
	})

	convey.Convey("Given a fresh SQLite store", t, func() {
		dir := t.TempDir()
		textfile := filepath.Join(dir, "media_impact.prom")
		_ = os.Setenv("MEDIA_IMPACT_SQLITE_PATH", filepath.Join(dir, "impact.db"))
		_ = os.Setenv("MEDIA_IMPACT_METRICS_TEXTFILE", textfile)
		convey.Reset(func() {
			_ = os.Unsetenv("MEDIA_IMPACT_SQLITE_PATH")
			_ = os.Unsetenv("MEDIA_IMPACT_METRICS_TEXTFILE")
		})

		convey.Convey("When verifying before anything was scored", func() {
			_, err := execute("verify")

			convey.Convey("Then verification fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When seeding, running and verifying", func() {
			out, err := execute("seed", "--clubs", "5", "--players", "3", "--seed", "7")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "seeded 5 clubs, 15 players")

			out, err = execute("run", "--top", "3")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out, convey.ShouldContainSubstring, "club: 5 loaded, 5 scored")
			convey.So(out, convey.ShouldContainSubstring, "player: 15 loaded, 15 scored")

			convey.Convey("Then the stored insights verify", func() {
				out, err := execute("verify", "--top", "2")
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "club: ok")
				convey.So(out, convey.ShouldContainSubstring, "player: ok")
			})

			convey.Convey("Then metrics were written for the textfile collector", func() {
				data, err := os.ReadFile(textfile)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, "media_impact_pipeline_")
			})
		})

		convey.Convey("When metrics settings are configured", func() {
			_ = os.Setenv("MEDIA_IMPACT_METRICS_NAMESPACE", "football")
			convey.Reset(func() { _ = os.Unsetenv("MEDIA_IMPACT_METRICS_NAMESPACE") })

			_, err := execute("seed", "--clubs", "2", "--players", "1")
			convey.So(err, convey.ShouldBeNil)
			_, err = execute("run")
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the textfile uses the configured namespace", func() {
				data, err := os.ReadFile(textfile)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, "football_pipeline_entities_scored_total")
				convey.So(string(data), convey.ShouldNotContainSubstring, "media_impact_pipeline_")
			})
		})

		convey.Convey("When running with the root command", func() {
			_, err := execute("seed", "--clubs", "2", "--players", "0")
			convey.So(err, convey.ShouldBeNil)

			out, err := execute()

			convey.Convey("Then the pipeline runs by default", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "club: 2 loaded, 2 scored")
				convey.So(out, convey.ShouldContainSubstring, "player: 0 loaded")
			})
		})
	})

	convey.Convey("Given an unknown store driver", t, func() {
		_ = os.Setenv("MEDIA_IMPACT_STORE_DRIVER", "postgres")
		convey.Reset(func() { _ = os.Unsetenv("MEDIA_IMPACT_STORE_DRIVER") })

		_, err := execute("run")
		convey.So(err, convey.ShouldNotBeNil)
	})
}
