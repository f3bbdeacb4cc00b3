package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	err := Init()
	if err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	if err := Init(WithFormat("xml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a JSON logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(Init(WithFormat(FormatJSON), WithWriter(&buf)), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging an info message with fields", func() {
			Named("pipeline").Info(ctx, "entity scored",
				String("entity", "Arsenal FC"),
				Float64("impact", 7.5),
				Bool("persisted", true),
			)

			Convey("Then the record carries the fields, component and caller", func() {
				var rec map[string]any
				So(json.Unmarshal(buf.Bytes(), &rec), ShouldBeNil)
				So(rec["msg"], ShouldEqual, "entity scored")
				So(rec["entity"], ShouldEqual, "Arsenal FC")
				So(rec["impact"], ShouldEqual, 7.5)
				So(rec["persisted"], ShouldEqual, true)
				So(rec["component"], ShouldEqual, "pipeline")
				So(rec["source"], ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When the level is raised to warn", func() {
			So(SetLevelString("warn"), ShouldBeNil)
			Get().Debug(ctx, "hidden")
			Get().Info(ctx, "hidden too")
			Get().Warn(ctx, "visible")

			Convey("Then only the warning is written", func() {
				So(strings.Count(buf.String(), "\n"), ShouldEqual, 1)
				So(buf.String(), ShouldContainSubstring, "visible")
			})
		})

		Convey("When an unknown level is requested", func() {
			err := SetLevelString("verbose")

			Convey("Then it is rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
