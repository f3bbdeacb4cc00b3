package service_test

import (
	"context"
	"path/filepath"
	"testing"

	repository "github.com/okian/mediaimpact/internal/adapters/repository"
	service "github.com/okian/mediaimpact/internal/app"
	"github.com/okian/mediaimpact/internal/domain/model"
	"github.com/okian/mediaimpact/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service over a SQLite store", t, func() {
		ctx := context.Background()
		store, err := repository.New(ctx, repository.Config{
			Driver:     repository.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "impact.db"),
		})
		So(err, ShouldBeNil)
		defer store.Close()

		seedClubs(ctx, store)
		svc := newService(store, service.WithLogger(logger.Get()))

		Convey("When running both populations end-to-end", func() {
			report, err := svc.Run(ctx)
			So(err, ShouldBeNil)
			So(report.Kinds, ShouldHaveLength, 2)
			So(report.Failed(), ShouldEqual, 0)

			Convey("Then club documents are stored highest impact first", func() {
				docs, err := store.Insights(ctx, model.KindClub)
				So(err, ShouldBeNil)
				So(docs, ShouldHaveLength, 3)
				So(docs[0].Name, ShouldEqual, "Arsenal")
				So(docs[0].ImpactScore, ShouldEqual, 10.0)
				So(docs[1].Name, ShouldEqual, "Chelsea")
				So(docs[2].Name, ShouldEqual, "Brentford")
				So(docs[2].ImpactScore, ShouldEqual, 0.0)
			})

			Convey("Then player documents keep their affiliation", func() {
				doc, err := store.Insight(ctx, model.KindPlayer, "Bukayo Saka")
				So(err, ShouldBeNil)
				So(doc.Affiliation, ShouldEqual, "Arsenal")
				So(doc.RunID, ShouldEqual, report.RunID)
			})

			Convey("And running again replaces rather than duplicates", func() {
				_, err := svc.Run(ctx)
				So(err, ShouldBeNil)

				docs, err := store.Insights(ctx, model.KindClub)
				So(err, ShouldBeNil)
				So(docs, ShouldHaveLength, 3)
			})
		})
	})
}
