package middleware_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/eventchains/eventchain"
	"github.com/katalvlaran/eventchains/middleware"
)

var errStep = errors.New("step failed")

func okEvent(name string) eventchain.Event {
	return eventchain.EventFunc{EventName: name, Fn: func(*eventchain.Context) error { return nil }}
}

func badEvent(name string) eventchain.Event {
	return eventchain.EventFunc{EventName: name, Fn: func(*eventchain.Context) error { return errStep }}
}

var _ = Describe("Middleware", func() {
	var ec *eventchain.Context

	BeforeEach(func() {
		ec = eventchain.NewContext()
	})

	Describe("NoOp", func() {
		It("increments its own key once per event", func() {
			chain := eventchain.NewChain().
				AddEvent(okEvent("a")).
				AddEvent(okEvent("b")).
				AddEvent(okEvent("c")).
				Use(middleware.NewNoOp(0)).
				Use(middleware.NewNoOp(1))
			res := chain.Execute(ec)

			Expect(res.Status).To(Equal(eventchain.Completed))
			Expect(eventchain.MustValue[uint32](ec, middleware.NoOpKey(0))).To(Equal(uint32(3)))
			Expect(eventchain.MustValue[uint32](ec, middleware.NoOpKey(1))).To(Equal(uint32(3)))
			Expect(middleware.NoOpKey(7)).To(Equal("noop_middleware_7_called"))
		})
	})

	Describe("Timing", func() {
		It("stores a duration per event even when the event fails", func() {
			chain := eventchain.NewChain(eventchain.WithFaultTolerance(eventchain.Lenient)).
				AddEvent(okEvent("Fast")).
				AddEvent(badEvent("Broken")).
				Use(middleware.NewTiming(false))
			res := chain.Execute(ec)

			Expect(res.Status).To(Equal(eventchain.CompletedWithWarnings))
			Expect(ec.Has("Fast_duration_ns")).To(BeTrue())
			_, err := eventchain.Value[uint64](ec, middleware.DurationKey("Broken"))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Performance and Counting", func() {
		It("count every dispatch across executions", func() {
			perf := middleware.NewPerformance()
			cnt := middleware.NewCounting()
			chain := eventchain.NewChain().
				AddEvent(okEvent("a")).
				AddEvent(okEvent("b")).
				Use(perf).
				Use(cnt)

			for i := 0; i < 5; i++ {
				chain.Execute(ec)
			}
			Expect(perf.EventCount()).To(Equal(uint64(10)))
			Expect(cnt.Count()).To(Equal(uint64(10)))
			Expect(ec.Keys()).To(BeEmpty())
		})
	})

	Describe("Logging", func() {
		var lines []string
		var logging *middleware.Logging

		BeforeEach(func() {
			lines = nil
			logging = middleware.NewLogging(true)
			logging.Printf = func(format string, args ...any) {
				lines = append(lines, fmt.Sprintf(format, args...))
			}
		})

		It("brackets successful events", func() {
			eventchain.NewChain().AddEvent(okEvent("Init")).Use(logging).Execute(ec)
			Expect(lines).To(Equal([]string{"▶ Init starting", "✓ Init completed"}))
		})

		It("reports failures with the error", func() {
			eventchain.NewChain().AddEvent(badEvent("Step")).Use(logging).Execute(ec)
			Expect(lines).To(ConsistOf("▶ Step starting", "✗ Step failed: step failed"))
		})

		It("stays silent when not verbose", func() {
			logging.Verbose = false
			eventchain.NewChain().AddEvent(okEvent("Init")).Use(logging).Execute(ec)
			Expect(lines).To(BeEmpty())
		})
	})

	Describe("Recovery", func() {
		panicky := eventchain.EventFunc{EventName: "Panicky", Fn: func(*eventchain.Context) error {
			panic("bad state")
		}}

		It("turns a panic into a strict-mode failure", func() {
			res := eventchain.NewChain().AddEvent(panicky).Use(middleware.NewRecovery(false)).Execute(ec)

			Expect(res.Status).To(Equal(eventchain.Failed))
			Expect(res.Err()).To(MatchError(ContainSubstring("bad state")))
			Expect(errors.Is(res.Err(), middleware.ErrRecovered)).To(BeTrue())
		})

		It("appends the stack when asked", func() {
			res := eventchain.NewChain().AddEvent(panicky).Use(middleware.NewRecovery(true)).Execute(ec)
			Expect(res.Err().Error()).To(ContainSubstring("goroutine"))
		})
	})
})
