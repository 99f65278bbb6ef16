package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/input"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
	"gonum.org/v1/gonum/spatial/r2"
)

func repeat(cmd input.Command, n int) []input.Command {
	out := make([]input.Command, n)
	for i := range out {
		out[i] = cmd
	}
	return out
}

var _ = Describe("Controller", func() {
	var (
		state *sim.State
		ctrl  *sim.Controller
	)

	BeforeEach(func() {
		state = sim.NewState()
		ctrl = sim.NewController(state, integrators.NewEuler(), sim.DefaultConfig())
	})

	Describe("initial state", func() {
		It("starts at 1x with trails on", func() {
			Expect(state.Speed).To(Equal(1.0))
			Expect(state.TrailsOn).To(BeTrue())
			Expect(ctrl.EffectiveDt()).To(Equal(physics.BaseTimestep))
		})

		It("keeps bodies in insertion order", func() {
			names := make([]string, len(state.Bodies))
			for i, b := range state.Bodies {
				names[i] = b.Name
			}
			Expect(names).To(Equal([]string{"Earth", "Mars", "Jupiter"}))
		})
	})

	Describe("speed commands", func() {
		It("scales the multiplier by 1.5", func() {
			ctrl.Tick([]input.Command{input.SpeedUp})
			Expect(state.Speed).To(BeNumerically("~", 1.5, 1e-12))
			Expect(ctrl.EffectiveDt()).To(BeNumerically("~", 4.5, 1e-12))

			ctrl.Tick([]input.Command{input.SlowDown, input.SlowDown})
			Expect(state.Speed).To(BeNumerically("~", 1.0/1.5, 1e-12))
		})

		It("saturates at 10x no matter how many speed-ups arrive", func() {
			ctrl.Tick(repeat(input.SpeedUp, 6))
			Expect(state.Speed).To(Equal(sim.MaxSpeed))

			ctrl.Tick(repeat(input.SpeedUp, 50))
			Expect(state.Speed).To(Equal(sim.MaxSpeed))
			Expect(ctrl.EffectiveDt()).To(Equal(30.0))
		})

		It("saturates at 0.1x no matter how many slow-downs arrive", func() {
			ctrl.Tick(repeat(input.SlowDown, 6))
			Expect(state.Speed).To(Equal(sim.MinSpeed))

			ctrl.Tick(repeat(input.SlowDown, 50))
			Expect(state.Speed).To(Equal(sim.MinSpeed))
		})

		It("leaves the saturated bound reachable in the other direction", func() {
			ctrl.Tick(repeat(input.SpeedUp, 20))
			ctrl.Tick([]input.Command{input.SlowDown})
			Expect(state.Speed).To(BeNumerically("~", 10.0/1.5, 1e-12))
		})
	})

	Describe("trails", func() {
		It("empties on toggle off and refills from empty on toggle on", func() {
			earth := state.Body("Earth")

			ctrl.Tick([]input.Command{input.ToggleTrails})
			Expect(state.TrailsOn).To(BeFalse())
			for _, b := range state.Bodies {
				Expect(b.Trail.Len()).To(Equal(0))
			}

			ctrl.Tick([]input.Command{input.ToggleTrails})
			Expect(earth.Trail.Len()).To(Equal(1))

			ctrl.Tick(nil)
			Expect(earth.Trail.Len()).To(Equal(2))
			last, ok := earth.Trail.Last()
			Expect(ok).To(BeTrue())
			Expect(last).To(Equal(earth.Pos))
		})

		It("clears trails that were already populated", func() {
			for i := 0; i < 10; i++ {
				ctrl.Tick(nil)
			}
			Expect(state.Body("Mars").Trail.Len()).To(Equal(10))

			ctrl.Tick([]input.Command{input.ToggleTrails})
			Expect(state.Body("Mars").Trail.Len()).To(Equal(0))
		})

		It("never holds more than the trail capacity", func() {
			for i := 0; i < physics.TrailCapacity+25; i++ {
				ctrl.Tick(nil)
			}
			for _, b := range state.Bodies {
				Expect(b.Trail.Len()).To(Equal(physics.TrailCapacity))
			}
		})
	})

	Describe("quit", func() {
		It("stops before any physics runs on that tick", func() {
			before := state.Clone()

			Expect(ctrl.Tick([]input.Command{input.SpeedUp, input.Quit, input.SpeedUp})).To(BeFalse())
			Expect(ctrl.Done()).To(BeTrue())
			Expect(ctrl.Ticks()).To(Equal(0))
			Expect(state.Speed).To(BeNumerically("~", 1.5, 1e-12))
			for i, b := range state.Bodies {
				Expect(b.Pos).To(Equal(before.Bodies[i].Pos))
			}
		})

		It("is terminal", func() {
			ctrl.Tick([]input.Command{input.Quit})
			Expect(ctrl.Tick(nil)).To(BeFalse())
			Expect(ctrl.Ticks()).To(Equal(0))
		})
	})

	Describe("physics", func() {
		It("advances Earth by one semi-implicit Euler step", func() {
			ctrl.Tick(nil)
			earth := state.Body("Earth")
			Expect(earth.Vel.X).To(BeNumerically("~", -1.0/30, 1e-9))
			Expect(earth.Vel.Y).To(BeNumerically("~", 1.4, 1e-12))
			Expect(earth.Pos.X).To(BeNumerically("~", 800-0.1, 1e-9))
			Expect(earth.Pos.Y).To(BeNumerically("~", 404.2, 1e-9))
		})

		It("never moves the attractor", func() {
			for i := 0; i < 100; i++ {
				ctrl.Tick(nil)
			}
			Expect(state.Attractor.Pos).To(Equal(r2.Vec{X: 500, Y: 400}))
			Expect(state.Attractor.Vel).To(Equal(r2.Vec{}))
		})

		It("keeps every body inside the viewport at full speed", func() {
			ctrl.Tick(repeat(input.SpeedUp, 10))
			for i := 0; i < 3000; i++ {
				ctrl.Tick(nil)
				for _, b := range state.Bodies {
					Expect(physics.Viewport.Contains(b.Pos)).To(BeTrue(), "%s at %v", b.Name, b.Pos)
				}
			}
		})

		It("leaves a body sitting on the attractor untouched", func() {
			stuck := physics.NewBody("Stuck", 1, state.Attractor.Pos, r2.Vec{X: 3, Y: -2})
			state.Bodies = append(state.Bodies, stuck)

			ctrl.Tick(nil)
			Expect(stuck.Pos).To(Equal(state.Attractor.Pos))
			Expect(stuck.Vel).To(Equal(r2.Vec{X: 3, Y: -2}))
			Expect(stuck.Trail.Len()).To(Equal(1))
		})

		It("stays finite over a long run", func() {
			for i := 0; i < 5000; i++ {
				ctrl.Tick(nil)
			}
			for _, b := range state.Bodies {
				Expect(b.IsValid()).To(BeTrue())
				Expect(math.IsNaN(b.Speed())).To(BeFalse())
			}
		})
	})

	Describe("frame", func() {
		It("reflects the state after the tick", func() {
			ctrl.Tick([]input.Command{input.SpeedUp, input.ToggleTrails})
			f := ctrl.Frame()
			Expect(f.Tick).To(Equal(1))
			Expect(f.Speed).To(BeNumerically("~", 1.5, 1e-12))
			Expect(f.Dt).To(BeNumerically("~", 4.5, 1e-12))
			Expect(f.TrailsOn).To(BeFalse())
			Expect(f.Bodies).To(HaveLen(3))
			Expect(f.Attractor.Name).To(Equal("Sun"))
		})
	})
})
