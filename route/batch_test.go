package route_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/geraud-g/reindeer/grid"
	"github.com/geraud-g/reindeer/route"
)

// BatchSuite runs SolveAll over a fixed mix of solvable and failing jobs.
type BatchSuite struct {
	suite.Suite
	jobs []route.Job
}

func (s *BatchSuite) SetupTest() {
	gA, startA, goalA := build(s.T(), scenarioA...)
	gB, startB, goalB := build(s.T(), scenarioB...)
	gE, startE, goalE := build(s.T(),
		"#####",
		"#S#E#",
		"#####",
	)
	s.jobs = []route.Job{
		{Name: "A", Grid: gA, Start: startA, Goal: goalA},
		{Name: "B", Grid: gB, Start: startB, Goal: goalB},
		{Name: "walled", Grid: gE, Start: startE, Goal: goalE},
		{Name: "bad-goal", Grid: gA, Start: startA, Goal: grid.Position{Col: 0, Row: 0}},
		{Name: "A-cheap-turns", Grid: gA, Start: startA, Goal: goalA, Options: []route.Option{route.WithTurnCost(1)}},
	}
}

func (s *BatchSuite) TestOutcomesInJobOrder() {
	for _, limit := range []int{0, 1, 2, 8} {
		out, err := route.SolveAll(context.Background(), s.jobs, limit)
		s.Require().NoError(err)
		s.Require().Len(out, len(s.jobs))

		for i, o := range out {
			s.Equal(s.jobs[i].Name, o.Name)
		}
		s.NoError(out[0].Err)
		s.Equal(int64(7036), out[0].Result.Cost)
		s.NoError(out[1].Err)
		s.Equal(int64(11048), out[1].Result.Cost)
		s.ErrorIs(out[2].Err, route.ErrUnreachable)
		s.ErrorIs(out[3].Err, route.ErrInvalidGoal)
		s.NoError(out[4].Err)
		s.Equal(int64(38), out[4].Result.Cost)
	}
}

func (s *BatchSuite) TestMatchesSequentialSolve() {
	out, err := route.SolveAll(context.Background(), s.jobs, 4)
	s.Require().NoError(err)
	for i, job := range s.jobs {
		res, err := route.Solve(job.Grid, job.Start, job.Goal, job.Options...)
		s.Equal(err, out[i].Err, job.Name)
		s.Equal(res, out[i].Result, job.Name)
	}
}

func (s *BatchSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := route.SolveAll(ctx, s.jobs, 1)
	s.ErrorIs(err, context.Canceled)
	s.Len(out, len(s.jobs))
	for _, o := range out {
		s.ErrorIs(o.Err, context.Canceled, o.Name)
	}
}

func (s *BatchSuite) TestEmpty() {
	out, err := route.SolveAll(context.Background(), nil, 2)
	s.NoError(err)
	s.Empty(out)
}

func TestBatchSuite(t *testing.T) {
	suite.Run(t, new(BatchSuite))
}
