// Package metrics exposes game activity as Prometheus collectors.
package metrics

import (
	"context"
	"strconv"

	"github.com/aretw0/akinator/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns the collectors and a private registry for them.
type Recorder struct {
	Registry *prometheus.Registry

	questions *prometheus.CounterVec
	guesses   *prometheus.CounterVec
	learned   prometheus.Counter
	saves     *prometheus.CounterVec
	animals   prometheus.Gauge
	depth     prometheus.Gauge
	asked     prometheus.Histogram
}

// NewRecorder creates and registers all collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		questions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "akinator_questions_answered_total",
				Help: "Total number of questions answered, by answer",
			},
			[]string{"answer"},
		),
		guesses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "akinator_guesses_total",
				Help: "Total number of guesses, by outcome",
			},
			[]string{"correct"},
		),
		learned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "akinator_animals_learned_total",
			Help: "Total number of animals learned",
		}),
		saves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "akinator_tree_saves_total",
				Help: "Total number of tree saves, by result",
			},
			[]string{"result"},
		),
		animals: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "akinator_tree_animals",
			Help: "Number of animals (leaves) in the tree",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "akinator_tree_depth",
			Help: "Number of questions on the longest path of the tree",
		}),
		asked: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "akinator_questions_per_round",
			Help:    "Questions asked before each guess",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		}),
	}

	r.Registry.MustRegister(r.questions, r.guesses, r.learned, r.saves, r.animals, r.depth, r.asked)
	return r
}

// Hooks returns engine hooks that feed the collectors.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnQuestion: func(ctx context.Context, e *domain.QuestionEvent) {
			r.questions.WithLabelValues(answerLabel(e.Answer)).Inc()
		},
		OnGuess: func(ctx context.Context, e *domain.GuessEvent) {
			r.guesses.WithLabelValues(strconv.FormatBool(e.Correct)).Inc()
			r.asked.Observe(float64(e.Questions))
		},
		OnLearn: func(ctx context.Context, e *domain.LearnEvent) {
			r.learned.Inc()
			r.setTree(e.Tree)
		},
		OnLoad: func(ctx context.Context, e *domain.StoreEvent) {
			r.setTree(e.Tree)
		},
		OnSave: func(ctx context.Context, e *domain.StoreEvent) {
			result := "ok"
			if e.Err != nil {
				result = "error"
			}
			r.saves.WithLabelValues(result).Inc()
		},
	}
}

func (r *Recorder) setTree(s domain.Stats) {
	r.animals.Set(float64(s.Leaves))
	r.depth.Set(float64(s.Depth))
}

func answerLabel(yes bool) string {
	if yes {
		return "yes"
	}
	return "no"
}
