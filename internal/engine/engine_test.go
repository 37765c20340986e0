package engine_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/san-kum/radpat/internal/antenna"
	"github.com/san-kum/radpat/internal/engine"
	"github.com/san-kum/radpat/internal/params"
	"github.com/san-kum/radpat/internal/pattern"
	"github.com/san-kum/radpat/internal/render"
)

var _ = Describe("Engine", func() {
	var (
		az, el, sf *render.Recorder
		hook       *test.Hook
		eng        *engine.Engine
		clock      time.Time
	)

	BeforeEach(func() {
		az = render.NewRecorder(500, 400)
		el = render.NewRecorder(500, 400)
		sf = render.NewRecorder(800, 420)

		var logger *logrus.Logger
		logger, hook = test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)

		clock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		eng = engine.New(
			engine.Surfaces{Azimuth: az, Elevation: el, Surface: sf},
			engine.WithLogger(logger),
			engine.WithClock(func() time.Time { return clock }),
		)
	})

	Describe("Apply", func() {
		It("returns the same pattern and summary as the core", func() {
			cfg := antenna.Yagi{DirectorCount: 4}
			f, err := eng.Apply(cfg)
			Expect(err).NotTo(HaveOccurred())

			want, _ := pattern.Compute(cfg)
			sum, _ := params.Estimate(cfg)
			Expect(f.Pattern).To(Equal(want))
			Expect(f.Summary).To(Equal(sum))
			Expect(f.Config).To(Equal(antenna.Configuration(cfg)))
			Expect(f.UpdatedAt).To(Equal(clock))
		})

		It("clears each surface before drawing", func() {
			_, err := eng.Apply(antenna.Dipole{LengthRatio: 0.5})
			Expect(err).NotTo(HaveOccurred())

			for _, r := range []*render.Recorder{az, el, sf} {
				Expect(r.Calls).NotTo(BeEmpty())
				Expect(r.Calls[0].Kind).To(Equal(render.CallClear))
				Expect(r.Calls[1].Kind).To(Equal(render.CallFillRect))
				Expect(r.Count(render.CallClear)).To(Equal(1))
			}
		})

		It("fills one gradient polygon per polar panel", func() {
			_, err := eng.Apply(antenna.Monopole{LengthRatio: 0.25})
			Expect(err).NotTo(HaveOccurred())

			for _, r := range []*render.Recorder{az, el} {
				fills := r.Filter(render.CallFill)
				Expect(fills).To(HaveLen(1))
				Expect(fills[0].Paint.Gradient).NotTo(BeNil())
			}
		})

		It("draws the full surface mesh", func() {
			_, err := eng.Apply(antenna.ArrayDegrees(0.5, 90))
			Expect(err).NotTo(HaveOccurred())
			Expect(sf.Count(render.CallFill)).To(Equal(render.AzimuthSteps * render.PolarSteps))
		})

		It("redraws everything on each change", func() {
			_, err := eng.Apply(antenna.Dipole{LengthRatio: 0.5})
			Expect(err).NotTo(HaveOccurred())
			first := len(el.Calls)

			_, err = eng.Apply(antenna.Dipole{LengthRatio: 1.0})
			Expect(err).NotTo(HaveOccurred())
			Expect(el.Count(render.CallClear)).To(Equal(2))
			Expect(len(el.Calls)).To(Equal(2 * first))
		})

		It("logs one debug entry per frame", func() {
			_, err := eng.Apply(antenna.Yagi{DirectorCount: 3})
			Expect(err).NotTo(HaveOccurred())

			entry := hook.LastEntry()
			Expect(entry).NotTo(BeNil())
			Expect(entry.Level).To(Equal(logrus.DebugLevel))
			Expect(entry.Message).To(Equal("pattern applied"))
			Expect(entry.Data).To(HaveKeyWithValue("gain_dbi", 14.1))
			Expect(entry.Data).To(HaveKeyWithValue("antenna", "yagi directors=3"))
			Expect(entry.Data).To(HaveKey("elapsed"))
		})

		It("notifies observers with the new frame", func() {
			var got []engine.Frame
			eng.AddObserver(engine.ObserverFunc(func(f engine.Frame) {
				got = append(got, f)
			}))

			_, err := eng.Apply(antenna.Dipole{LengthRatio: 0.5})
			Expect(err).NotTo(HaveOccurred())
			_, err = eng.Apply(antenna.Yagi{DirectorCount: 2})
			Expect(err).NotTo(HaveOccurred())

			Expect(got).To(HaveLen(2))
			Expect(got[1].Config).To(Equal(antenna.Configuration(antenna.Yagi{DirectorCount: 2})))
		})
	})

	Describe("invalid configurations", func() {
		DescribeTable("are rejected before drawing",
			func(cfg antenna.Configuration) {
				_, err := eng.Apply(cfg)
				Expect(err).To(MatchError(antenna.ErrInvalidConfiguration))

				Expect(az.Calls).To(BeEmpty())
				Expect(el.Calls).To(BeEmpty())
				Expect(sf.Calls).To(BeEmpty())

				Expect(hook.LastEntry()).NotTo(BeNil())
				Expect(hook.LastEntry().Level).To(Equal(logrus.WarnLevel))
				_, ok := eng.Last()
				Expect(ok).To(BeFalse())
			},
			Entry("nil", nil),
			Entry("negative dipole", antenna.Dipole{LengthRatio: -0.5}),
			Entry("zero monopole", antenna.Monopole{LengthRatio: 0}),
			Entry("negative spacing", antenna.Array{SpacingRatio: -1}),
			Entry("negative directors", antenna.Yagi{DirectorCount: -2}),
		)

		It("keeps the previous frame", func() {
			good, err := eng.Apply(antenna.Yagi{DirectorCount: 3})
			Expect(err).NotTo(HaveOccurred())

			_, err = eng.Apply(antenna.Yagi{DirectorCount: -1})
			Expect(err).To(HaveOccurred())

			last, ok := eng.Last()
			Expect(ok).To(BeTrue())
			Expect(last).To(Equal(good))
		})
	})

	Describe("Reset", func() {
		It("applies the reset default", func() {
			f, err := eng.Reset(antenna.KindArray)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Config).To(Equal(antenna.Configuration(antenna.Array{SpacingRatio: 0.5})))
		})

		It("rejects unknown kinds", func() {
			_, err := eng.Reset(antenna.Kind("helix"))
			Expect(err).To(MatchError(antenna.ErrInvalidConfiguration))
		})
	})

	It("skips missing surfaces", func() {
		e := engine.New(engine.Surfaces{Elevation: el}, engine.WithLogger(logrus.New()))
		_, err := e.Apply(antenna.Dipole{LengthRatio: 0.5})
		Expect(err).NotTo(HaveOccurred())
		Expect(el.Calls).NotTo(BeEmpty())
	})

	It("serialises concurrent applies", func() {
		var wg sync.WaitGroup
		for n := 0; n < 8; n++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, _ = eng.Apply(antenna.Yagi{DirectorCount: n})
			}(n)
		}
		wg.Wait()

		Expect(sf.Count(render.CallClear)).To(Equal(8))
		perFrame := len(sf.Calls) / 8
		// every frame starts with a clear, so clears sit on frame boundaries
		for i, c := range sf.Calls {
			if c.Kind == render.CallClear {
				Expect(i % perFrame).To(Equal(0))
			}
		}
	})
})
