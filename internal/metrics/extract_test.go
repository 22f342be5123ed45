package metrics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/edgaromeroc/bioslurry-simulator/internal/metrics"
	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
)

var _ = Describe("Extract", func() {
	It("rejects an empty trajectory", func() {
		_, err := metrics.Extract(nil, reactor.Default())
		Expect(err).To(MatchError(metrics.ErrEmptyTrajectory))
	})

	Context("with the reference run", func() {
		var (
			p    reactor.Params
			traj sim.Trajectory
			sum  *metrics.Summary
		)

		BeforeEach(func() {
			p = reactor.Default()
			var err error
			traj, err = sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())
			sum, err = metrics.Extract(traj, p)
			Expect(err).NotTo(HaveOccurred())
		})

		It("samples the day checkpoints from the grid", func() {
			// dt=0.5 h puts snapshot i at i/48 days; the first snapshot
			// within 0.1 day of day 3 is i=140, of day 7 is i=332, of
			// day 14 is i=668
			Expect(sum.RemovalDay3).To(Equal(traj[140].Removal))
			Expect(sum.RemovalDay7).To(Equal(traj[332].Removal))
			Expect(sum.RemovalDay14).To(Equal(traj[668].Removal))
			Expect(sum.ResidualDay3).To(Equal(traj[140].Total))
			Expect(sum.ResidualDay14).To(Equal(traj[668].Total))
		})

		It("orders the checkpoints", func() {
			Expect(sum.RemovalDay7).To(BeNumerically(">=", sum.RemovalDay3))
			Expect(sum.RemovalDay14).To(BeNumerically(">=", sum.RemovalDay7))
			Expect(sum.ResidualDay7).To(BeNumerically("<=", sum.ResidualDay3))
		})

		It("reports the final state", func() {
			last := traj[len(traj)-1]
			Expect(sum.FinalRemoval).To(Equal(last.Removal))
			Expect(sum.FinalBiomass).To(Equal(last.Biomass))
			Expect(sum.FinalAMPA).To(Equal(last.AMPA))
		})

		It("sees net biomass growth", func() {
			Expect(sum.PeakBiomass).To(BeNumerically(">", p.Biomass0))
			Expect(sum.PeakBiomassDay).To(BeNumerically(">", 0))
		})

		It("carries the run context", func() {
			Expect(sum.InitialMass).To(Equal(100.0))
			Expect(sum.DurationDays).To(Equal(14.0))
		})
	})

	Context("with a run shorter than the checkpoints", func() {
		It("falls back to the initial snapshot", func() {
			p := reactor.Default()
			p.Duration = 24

			traj, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())

			sum, err := metrics.Extract(traj, p)
			Expect(err).NotTo(HaveOccurred())

			Expect(sum.RemovalDay3).To(Equal(traj[0].Removal))
			Expect(sum.RemovalDay14).To(Equal(traj[0].Removal))
			Expect(sum.ResidualDay7).To(Equal(traj[0].Total))
		})
	})

	Context("T90", func() {
		It("takes the first crossing", func() {
			traj := sim.Trajectory{
				{TimeDays: 0, Removal: 0},
				{TimeDays: 1, Removal: 50},
				{TimeDays: 2, Removal: 91},
				{TimeDays: 3, Removal: 95},
			}

			sum, err := metrics.Extract(traj, reactor.Default())
			Expect(err).NotTo(HaveOccurred())
			Expect(sum.T90Reached).To(BeTrue())
			Expect(sum.T90Days).To(Equal(2.0))
		})

		It("reports an unreached target", func() {
			p := reactor.Default()
			p.Biomass0 = 0

			traj, err := sim.Simulate(p)
			Expect(err).NotTo(HaveOccurred())

			sum, err := metrics.Extract(traj, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(sum.T90Reached).To(BeFalse())
			Expect(sum.T90Days).To(BeZero())
		})
	})

	Context("peaks", func() {
		It("takes the first occurrence of the maximum", func() {
			traj := sim.Trajectory{
				{TimeDays: 0, Biomass: 5, AMPA: 0},
				{TimeDays: 1, Biomass: 12, AMPA: 3},
				{TimeDays: 2, Biomass: 12, AMPA: 8},
				{TimeDays: 3, Biomass: 7, AMPA: 8},
			}

			sum, err := metrics.Extract(traj, reactor.Default())
			Expect(err).NotTo(HaveOccurred())

			Expect(sum.PeakBiomass).To(Equal(12.0))
			Expect(sum.PeakBiomassDay).To(Equal(1.0))
			Expect(sum.PeakAMPA).To(Equal(8.0))
			Expect(sum.PeakAMPADay).To(Equal(2.0))
		})
	})
})
