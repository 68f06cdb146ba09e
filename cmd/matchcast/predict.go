package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/matchcast/internal/ensemble"
	"github.com/yourusername/matchcast/internal/markets"
	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/service"
)

// fixtureFlags are the flags shared by every per-fixture command
type fixtureFlags struct {
	home     string
	away     string
	league   string
	venue    string
	kickoff  string
	matchday int
	preset   string

	temperature   float64
	humidity      float64
	wind          float64
	precipitation float64
	visibility    float64
	condition     string
}

func (f *fixtureFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.home, "home", "", "Home team")
	flags.StringVar(&f.away, "away", "", "Away team")
	flags.StringVar(&f.league, "league", "Premier League", "League name")
	flags.StringVar(&f.venue, "venue", "", "Venue")
	flags.StringVar(&f.kickoff, "kickoff", "", "Kickoff time (RFC 3339), defaults to now")
	flags.IntVar(&f.matchday, "matchday", 0, "Matchday of the season, 0 for the configured default")
	flags.StringVar(&f.preset, "weights-preset", "", "Ensemble weight preset to apply")

	flags.Float64Var(&f.temperature, "temperature", 15, "Temperature in Celsius")
	flags.Float64Var(&f.humidity, "humidity", 60, "Relative humidity in percent")
	flags.Float64Var(&f.wind, "wind", 10, "Wind speed in km/h")
	flags.Float64Var(&f.precipitation, "precipitation", 0, "Precipitation in mm")
	flags.Float64Var(&f.visibility, "visibility", 10, "Visibility in km")
	flags.StringVar(&f.condition, "condition", "", "Weather condition (clear, cloudy, rain, snow, fog)")

	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("away")
}

// match builds the fixture described by the flags
func (f *fixtureFlags) match() (models.Match, error) {
	kickoff := time.Now().UTC()
	if f.kickoff != "" {
		t, err := time.Parse(time.RFC3339, f.kickoff)
		if err != nil {
			return models.Match{}, fmt.Errorf("invalid kickoff %q: %w", f.kickoff, err)
		}
		kickoff = t.UTC()
	}

	m := models.NewMatch(f.home, f.away, f.league, kickoff)
	m.Venue = f.venue
	m.Matchday = f.matchday
	if m.Matchday == 0 {
		m.Matchday = cfg.Engine.DefaultMatchday
	}
	return m, nil
}

// weather returns the forecast conditions, or nil when no weather flag was set
func (f *fixtureFlags) weather(cmd *cobra.Command) (*models.WeatherConditions, error) {
	changed := false
	for _, name := range []string{"temperature", "humidity", "wind", "precipitation", "visibility", "condition"} {
		changed = changed || cmd.Flags().Changed(name)
	}
	if !changed {
		return nil, nil
	}

	w := &models.WeatherConditions{
		Temperature:   f.temperature,
		Humidity:      f.humidity,
		WindSpeed:     f.wind,
		Precipitation: f.precipitation,
		Visibility:    f.visibility,
		Condition:     models.ConditionClear,
	}
	if f.condition != "" {
		c, err := models.ParseWeatherCondition(f.condition)
		if err != nil {
			return nil, err
		}
		w.Condition = c
	}
	return w, nil
}

func (f *fixtureFlags) request(cmd *cobra.Command) (*service.PredictionService, service.Request, error) {
	svc, err := newPredictionService()
	if err != nil {
		return nil, service.Request{}, err
	}
	if f.preset != "" {
		if err := svc.ApplyPreset(f.preset); err != nil {
			return nil, service.Request{}, err
		}
	}
	match, err := f.match()
	if err != nil {
		return nil, service.Request{}, err
	}
	weather, err := f.weather(cmd)
	if err != nil {
		return nil, service.Request{}, err
	}
	return svc, service.Request{Match: match, Weather: weather}, nil
}

func newPredictCmd() *cobra.Command {
	var flags fixtureFlags
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a fixture with every model and the ensemble",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			res, err := svc.Predict(cmd.Context(), req)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(os.Stdout, res)
			}
			printPredictions(os.Stdout, req.Match, svc.ModelNames(), res)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newMarketsCmd() *cobra.Command {
	var flags fixtureFlags
	cmd := &cobra.Command{
		Use:   "markets",
		Short: "Derive betting markets from the ensemble prediction",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			res, err := svc.Predict(cmd.Context(), req)
			if err != nil {
				return err
			}
			m, err := svc.DeriveMarkets(cmd.Context(), req.Match, res.Ensemble.Prediction)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(os.Stdout, m)
			}
			printMarkets(os.Stdout, req.Match, res.Ensemble.Prediction, m)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newInsightsCmd() *cobra.Command {
	var flags fixtureFlags
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show tactical, strategic, injury and market insights for a fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			market, err := svc.GetMarketInsights(cmd.Context(), req.Match)
			if err != nil {
				return err
			}
			home, away := svc.GetMatchInjuryReports(req.Match)
			out := struct {
				Tactical  interface{}           `json:"tactical"`
				Strategic interface{}           `json:"strategic"`
				Injuries  []models.TeamInjuries `json:"injuries"`
				Market    interface{}           `json:"market"`
			}{
				Tactical:  svc.GetTacticalInsights(req.Match.HomeTeam, req.Match.AwayTeam),
				Strategic: svc.GetMatchStrategicInsights(req.Match),
				Injuries:  []models.TeamInjuries{home, away},
				Market:    market,
			}
			return writeJSON(os.Stdout, out)
		},
	}
	flags.register(cmd)
	return cmd
}

func newWeightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weights",
		Short: "List the models, weight presets and configured weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			configured, err := cfg.InitialWeights()
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(os.Stdout, map[string]interface{}{
					"models":     ensemble.ModelCatalog(),
					"presets":    ensemble.Presets(),
					"configured": configured,
				})
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tDEFAULT\tBEST FOR")
			for _, m := range ensemble.ModelCatalog() {
				fmt.Fprintf(w, "%s\t%.2f\t%s\n", m.Name, m.DefaultWeight, m.BestFor)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "PRESET\tDESCRIPTION")
			for _, p := range ensemble.Presets() {
				fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
			}
			fmt.Fprintln(w)
			if configured == nil {
				fmt.Fprintln(w, "Configured:\tconfidence weighting")
			} else {
				fmt.Fprintf(w, "Configured:\t%v\n", map[string]float64(configured))
			}
			return w.Flush()
		},
	}
}

func printPredictions(out io.Writer, match models.Match, names []string, res *service.Result) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s (%s, matchday %d)\n\n", match, match.League, match.EffectiveMatchday())
	fmt.Fprintln(w, "MODEL\tHOME\tDRAW\tAWAY\tPICK\tCONF\txG")
	for _, name := range append(names, ensemble.Name) {
		p := res.Predictions[name]
		fmt.Fprintf(w, "%s\t%.1f%%\t%.1f%%\t%.1f%%\t%s\t%.2f\t%.2f-%.2f\n",
			name, p.HomeWin*100, p.Draw*100, p.AwayWin*100, p.MostLikely(), p.Confidence, p.ExpectedGoals.Home, p.ExpectedGoals.Away)
	}
	fmt.Fprintf(w, "\nEnsemble weighting: %s\n", res.Ensemble.Mode)
	w.Flush()
}

func printMarkets(out io.Writer, match models.Match, base models.Prediction, m *models.BettingMarketPrediction) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s  expected goals %.2f-%.2f\n\n", match, base.ExpectedGoals.Home, base.ExpectedGoals.Away)

	fmt.Fprintln(w, "DOUBLE CHANCE\t")
	fmt.Fprintf(w, "1X\t%.1f%%\n12\t%.1f%%\nX2\t%.1f%%\n\n", m.HomeOrDraw*100, m.HomeOrAway*100, m.AwayOrDraw*100)

	fmt.Fprintln(w, "LINE\tOVER\tUNDER")
	for _, gl := range m.GoalLines {
		fmt.Fprintf(w, "%.1f\t%.1f%%\t%.1f%%\n", gl.Line, gl.Over*100, gl.Under*100)
	}
	fmt.Fprintf(w, "\nBoth teams score\t%.1f%%\n\n", m.BothTeamsScore*100)

	fmt.Fprintln(w, "HANDICAP\tHOME\tAWAY")
	for _, line := range markets.HandicapLines {
		key := markets.HandicapLabel(line)
		fmt.Fprintf(w, "%s\t%.1f%%\t%.1f%%\n", key, m.HomeHandicap[key]*100, m.AwayHandicap[key]*100)
	}

	fmt.Fprintln(w, "\nCORRECT SCORE\t")
	for _, s := range topScores(m.CorrectScoreProbabilities, 6) {
		fmt.Fprintf(w, "%s\t%.1f%%\n", s, m.CorrectScoreProbabilities[s]*100)
	}

	fmt.Fprintf(w, "\nHalf time\t%.1f%% / %.1f%% / %.1f%%\n", m.HalfTime.HomeWin*100, m.HalfTime.Draw*100, m.HalfTime.AwayWin*100)
	w.Flush()
}

func topScores(scores map[string]float64, n int) []string {
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if scores[keys[i]] != scores[keys[j]] {
			return scores[keys[i]] > scores[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
