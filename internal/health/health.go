// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package health scores the passwords in a decrypted vault.
//
// Everything here is a pure function of plaintext entries and a reference
// time. Nothing is mutated and nothing is logged, so the report is safe to
// compute on every refresh.
package health

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-lockr/models"
)

const (
	// MaxStrength caps [Strength].
	MaxStrength = 5
	// WeakBelow is the first strength that is not weak.
	WeakBelow = 3
	// StrongFrom is the lowest strength counted as strong.
	StrongFrom = 4
	// MaxAge is how long a password may go without an update.
	MaxAge = 90 * 24 * time.Hour

	weakPenalty   = 40
	reusedPenalty = 40
	oldPenalty    = 20
)

// Strength rates pw from 0 to [MaxStrength]: one point for each length
// threshold of 8, 12 and 16 runes, and one point for each class present
// among lowercase, uppercase, digits and anything else.
func Strength(pw string) int {
	s := 0
	n := utf8.RuneCountInString(pw)
	for _, threshold := range []int{8, 12, 16} {
		if n >= threshold {
			s++
		}
	}

	var lower, upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			s++
		}
	}

	return min(s, MaxStrength)
}

// Analyze builds a [models.HealthReport] for entries as of now.
//
// Reuse groups keep the order in which their password first appears.
func Analyze(entries []models.Entry, now time.Time) models.HealthReport {
	report := models.HealthReport{
		Score:           100,
		WeakPasswords:   []models.Entry{},
		ReusedPasswords: []models.ReusedGroup{},
		OldPasswords:    []models.Entry{},
		TotalPasswords:  len(entries),
	}

	cutoff := now.Add(-MaxAge)
	groups := make(map[string]int)
	for _, e := range entries {
		switch s := Strength(e.Password); {
		case s < WeakBelow:
			report.WeakPasswords = append(report.WeakPasswords, e)
		case s >= StrongFrom:
			report.StrongPasswords++
		}

		if idx, ok := groups[e.Password]; ok {
			report.ReusedPasswords[idx].Entries = append(report.ReusedPasswords[idx].Entries, e)
		} else {
			groups[e.Password] = len(report.ReusedPasswords)
			report.ReusedPasswords = append(report.ReusedPasswords, models.ReusedGroup{Password: e.Password, Entries: []models.Entry{e}})
		}

		if e.UpdatedAt.Before(cutoff) {
			report.OldPasswords = append(report.OldPasswords, e)
		}
	}

	reused := report.ReusedPasswords[:0]
	for _, g := range report.ReusedPasswords {
		if len(g.Entries) > 1 {
			reused = append(reused, g)
		}
	}
	report.ReusedPasswords = reused

	if report.TotalPasswords > 0 {
		total := float64(report.TotalPasswords)
		score := 100.0
		score -= float64(len(report.WeakPasswords)) / total * weakPenalty
		score -= float64(report.ReusedEntriesCount()) / total * reusedPenalty
		score -= float64(len(report.OldPasswords)) / total * oldPenalty
		report.Score = int(math.Max(0, math.Round(score)))
	}

	return report
}

// Level is the colour band of a score.
type Level string

// Score bands, best first.
const (
	LevelGreen  Level = "green"
	LevelYellow Level = "yellow"
	LevelOrange Level = "orange"
	LevelRed    Level = "red"
)

// ScoreLabel names the band of score.
func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}

// ScoreLevel returns the colour of the band of score.
func ScoreLevel(score int) Level {
	switch {
	case score >= 80:
		return LevelGreen
	case score >= 60:
		return LevelYellow
	case score >= 40:
		return LevelOrange
	default:
		return LevelRed
	}
}
