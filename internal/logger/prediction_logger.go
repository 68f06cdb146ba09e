package logger

import (
	"github.com/sirupsen/logrus"
)

// PredictionLogger provides dedicated logging for the prediction pipeline.
type PredictionLogger struct {
	*logrus.Entry
}

// NewPredictionLogger creates a new prediction logger.
func NewPredictionLogger(baseLogger *logrus.Logger) *PredictionLogger {
	return &PredictionLogger{
		Entry: baseLogger.WithField("component", "prediction"),
	}
}

// LogModelPrediction logs a single outcome model result.
func (pl *PredictionLogger) LogModelPrediction(matchID, model string, homeWin, draw, awayWin, confidence, durationMs float64) {
	pl.WithFields(logrus.Fields{
		"match_id":    matchID,
		"model":       model,
		"home_win":    homeWin,
		"draw":        draw,
		"away_win":    awayWin,
		"confidence":  confidence,
		"duration_ms": durationMs,
	}).Debug("Model prediction completed")
}

// LogEnsemble logs an ensemble combination.
func (pl *PredictionLogger) LogEnsemble(matchID, mode string, models int, homeWin, draw, awayWin, confidence float64) {
	pl.WithFields(logrus.Fields{
		"match_id":   matchID,
		"mode":       mode,
		"models":     models,
		"home_win":   homeWin,
		"draw":       draw,
		"away_win":   awayWin,
		"confidence": confidence,
	}).Info("Ensemble prediction combined")
}

// LogMarkets logs a derived market generation.
func (pl *PredictionLogger) LogMarkets(matchID string, totalGoals, over25, bothTeamsScore float64, correctScores int) {
	pl.WithFields(logrus.Fields{
		"match_id":         matchID,
		"expected_goals":   totalGoals,
		"over_25_goals":    over25,
		"both_teams_score": bothTeamsScore,
		"correct_scores":   correctScores,
	}).Debug("Derived markets generated")
}

// LogWeightsChanged logs an ensemble weight change.
func (pl *PredictionLogger) LogWeightsChanged(source string, oldWeights, newWeights map[string]float64) {
	pl.WithFields(logrus.Fields{
		"event_type":  "weights_changed",
		"source":      source,
		"old_weights": oldWeights,
		"new_weights": newWeights,
	}).Info("Ensemble weights changed")
}

// LogSlateRefresh logs a completed slate forecast run.
func (pl *PredictionLogger) LogSlateRefresh(runID string, fixtures, failed int, durationMs float64) {
	entry := pl.WithFields(logrus.Fields{
		"run_id":      runID,
		"fixtures":    fixtures,
		"failed":      failed,
		"duration_ms": durationMs,
	})
	if failed > 0 {
		entry.Warn("Slate refresh completed with failures")
		return
	}
	entry.Info("Slate refresh completed")
}
