package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			metricPrefixOpt := WithMetricPrefix("test-prefix")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(metricPrefixOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithMetricPrefix("test-prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithCustomLabels(map[string]string{"env": "test", "version": "1.0"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording ingest metrics", func() {
			Convey("Then it should record ingested games", func() {
				So(func() {
					RecordGameIngested()
					RecordGameIngested()
					RecordGameIngested()
				}, ShouldNotPanic)
			})

			Convey("And it should record duplicates and rejections", func() {
				So(func() {
					RecordGameDuplicate()
					RecordGameRejected()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording computation metrics", func() {
			Convey("Then it should record per-view durations", func() {
				So(func() {
					RecordComputeDuration("standings", 12.0)
					RecordComputeDuration("ats", 3.5)
					RecordComputeDuration("power", 8.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording cache metrics", func() {
			Convey("Then it should record hits, misses and evictions", func() {
				So(func() {
					RecordCacheHit("response")
					RecordCacheMiss("response")
					RecordCacheEvictions("response", 100)
					RecordCacheHit("freshness")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording store metrics", func() {
			Convey("Then it should update store gauges", func() {
				So(func() {
					UpdateGamesStored(5000)
					UpdateSeasonsStored(18)
					RecordStoreQueryLatency(0.4)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording queue and worker metrics", func() {
			Convey("Then it should update queue gauges and counters", func() {
				So(func() {
					UpdateQueueSize(1000)
					UpdateQueueCapacity(10000)
					UpdateQueueUtilization(0.1)
					RecordQueueEnqueue()
					RecordQueueDequeue()
					RecordQueueEnqueueError()
				}, ShouldNotPanic)
			})

			Convey("And it should update worker gauges", func() {
				So(func() {
					UpdateWorkerActiveCount(4)
					UpdateWorkerIdleCount(4)
					RecordWorkerProcessingLatency(2.0)
					RecordWorkerError()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests and durations", func() {
				So(func() {
					RecordHTTPRequest("/healthz", "GET", "200")
					RecordHTTPRequest("/games", "POST", "202")
					RecordHTTPRequest("/standings", "GET", "200")
					RecordHTTPRequestDuration("/standings", "GET", "200", 15.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording errors by component", func() {
			Convey("Then it should accept arbitrary labels", func() {
				So(func() {
					RecordErrorByComponent("repository", "validation")
					RecordErrorByComponent("queue", "full")
					RecordErrorByComponent("worker", "store_failed")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsRegistry(t *testing.T) {
	Convey("Given the package registry", t, func() {
		Convey("Then it is non-nil and gatherable", func() {
			registry := GetRegistry()
			So(registry, ShouldNotBeNil)

			families, err := registry.Gather()
			So(err, ShouldBeNil)
			So(families, ShouldNotBeEmpty)
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given concurrent metric recording", t, func() {
		Convey("Then parallel writers do not race", func() {
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 100; j++ {
						RecordGameIngested()
						RecordCacheHit("response")
						UpdateQueueSize(j)
						RecordComputeDuration("standings", float64(j))
					}
				}()
			}
			So(func() { wg.Wait() }, ShouldNotPanic)
		})
	})
}
