package config_test

import (
	"runtime"
	"testing"

	"github.com/okian/gridiron/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.QueueSize, convey.ShouldEqual, 100_000)
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU()*4)
			convey.So(cfg.DedupeSize, convey.ShouldEqual, 50_000)
			convey.So(cfg.MaxLimit, convey.ShouldEqual, 100)
			convey.So(cfg.ViewCacheTTLSeconds, convey.ShouldEqual, 300)
		})

		convey.Convey("Then the default power weights cover all factors", func() {
			convey.So(cfg.PowerWeights["record"], convey.ShouldEqual, 0.5)
			convey.So(cfg.PowerWeights["margin"], convey.ShouldEqual, 0.3)
			convey.So(cfg.PowerWeights["strength"], convey.ShouldEqual, 0.2)
		})
	})
}
