package pipelinecalc

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidInput is returned for any request that fails validation.
// Callers check it with errors.Is.
var ErrInvalidInput = errors.New("invalid pipeline request")

type Stage struct {
	ID             string
	Name           string
	Order          int
	ConversionRate float64 // percent of entrants advancing to the next stage
	TatDays        int
	IsSpecial      bool
	MapsToStatus   string
}

type Request struct {
	Stages              []Stage // chain and special stages in any order
	TargetCount         int
	TargetDate          *time.Time
	SafetyBufferPercent float64
}

type StageResult struct {
	Stage
	RequiredCount *int       // nil for special stages
	NeededByDate  *time.Time // nil when no target date was supplied
}

type Metrics struct {
	TotalTatDays          int
	AverageConversionRate float64
	OverallConversionRate float64 // product of chain stage rates, percent
	StageCount            int
	EfficiencyScore       float64
}

type Result struct {
	Stages  []StageResult // chain stages first, ascending by order, then special stages
	Metrics Metrics
}

// Calculate back-solves the recruiting funnel: starting from the headcount
// required at the terminal stage it computes how many candidates must enter
// every upstream stage, and when a target date is given, the date each stage
// must start to hit it. The divisor at each step is the conversion rate of
// the downstream stage being fed:
//
//	required[i] = ceil(required[i+1] / (rate[i+1] / 100))
//
// Rounding is per-stage ceiling, fractional candidates do not exist.
// Special stages (Dropped, On Hold, Rejected) are echoed through without a
// computed count. The function is pure, either a complete result is
// returned or an error.
func Calculate(req Request) (Result, error) {
	chain, special, err := splitStages(req.Stages)
	if err != nil {
		return Result{}, err
	}
	if err := validate(req, chain); err != nil {
		return Result{}, err
	}

	n := len(chain)
	required := make([]int, n)
	required[n-1] = int(math.Ceil(float64(req.TargetCount) * (1 + req.SafetyBufferPercent/100)))
	for i := n - 2; i >= 0; i-- {
		required[i] = int(math.Ceil(float64(required[i+1]) / (chain[i+1].ConversionRate / 100)))
	}

	var dates []*time.Time
	if req.TargetDate != nil {
		dates = make([]*time.Time, n)
		current := *req.TargetDate
		dates[n-1] = &current
		for i := n - 2; i >= 0; i-- {
			d := dates[i+1].AddDate(0, 0, -chain[i].TatDays)
			dates[i] = &d
		}
	}

	result := Result{
		Stages:  make([]StageResult, 0, len(req.Stages)),
		Metrics: calcMetrics(chain),
	}
	for i, stage := range chain {
		row := StageResult{Stage: stage, RequiredCount: intPtr(required[i])}
		if dates != nil {
			row.NeededByDate = dates[i]
		}
		result.Stages = append(result.Stages, row)
	}
	for _, stage := range special {
		result.Stages = append(result.Stages, StageResult{Stage: stage})
	}
	return result, nil
}

func splitStages(stages []Stage) (chain, special []Stage, err error) {
	for _, stage := range stages {
		if stage.IsSpecial {
			special = append(special, stage)
			continue
		}
		chain = append(chain, stage)
	}
	sort.SliceStable(chain, func(i, j int) bool {
		return chain[i].Order < chain[j].Order
	})
	return chain, special, nil
}

func validate(req Request, chain []Stage) error {
	if req.TargetCount <= 0 {
		return errors.Wrap(ErrInvalidInput, "target count must be positive")
	}
	if req.SafetyBufferPercent < 0 {
		return errors.Wrap(ErrInvalidInput, "safety buffer must not be negative")
	}
	if len(chain) == 0 {
		return errors.Wrap(ErrInvalidInput, "stage list is empty")
	}
	for i, stage := range chain {
		if stage.ConversionRate <= 0 || stage.ConversionRate > 100 {
			return errors.Wrapf(ErrInvalidInput, "stage %q: conversion rate %.2f is out of range (0,100]", stage.Name, stage.ConversionRate)
		}
		if stage.TatDays < 0 {
			return errors.Wrapf(ErrInvalidInput, "stage %q: negative turnaround time", stage.Name)
		}
		if i > 0 && stage.Order <= chain[i-1].Order {
			return errors.Wrapf(ErrInvalidInput, "stage %q: order %d is not strictly increasing", stage.Name, stage.Order)
		}
	}
	return nil
}

func calcMetrics(chain []Stage) Metrics {
	totalTat := 0
	sumRate := 0.0
	overall := 1.0
	for _, stage := range chain {
		totalTat += stage.TatDays
		sumRate += stage.ConversionRate
		overall *= stage.ConversionRate / 100
	}
	m := Metrics{
		TotalTatDays:          totalTat,
		AverageConversionRate: sumRate / float64(len(chain)),
		OverallConversionRate: overall * 100,
		StageCount:            len(chain),
	}
	if totalTat > 0 {
		m.EfficiencyScore = m.AverageConversionRate / float64(totalTat) * 100
	}
	return m
}

func intPtr(v int) *int {
	return &v
}
