// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// GameMode identifies a match queue. The numeric value is the queue id the
// API expects on the wire.
type GameMode int

const (
	Conquest       GameMode = 426
	MOTD           GameMode = 434
	Arena          GameMode = 435
	DuelRanked     GameMode = 440
	Assault        GameMode = 445
	Joust          GameMode = 448
	JoustRanked    GameMode = 450
	ConquestRanked GameMode = 451
	Siege          GameMode = 459
	Clash          GameMode = 466
)

var gameModeNames = map[GameMode]string{
	Conquest:       "Conquest",
	MOTD:           "MOTD",
	Arena:          "Arena",
	DuelRanked:     "DuelRanked",
	Assault:        "Assault",
	Joust:          "Joust",
	JoustRanked:    "JoustRanked",
	ConquestRanked: "ConquestRanked",
	Siege:          "Siege",
	Clash:          "Clash",
}

// Valid reports whether m is a known queue.
func (m GameMode) Valid() bool {
	_, ok := gameModeNames[m]
	return ok
}

// IsRanked reports whether leaderboard and league endpoints accept m.
func (m GameMode) IsRanked() bool {
	switch m {
	case ConquestRanked, JoustRanked, DuelRanked:
		return true
	default:
		return false
	}
}

// WireValue returns the queue id as sent in request paths.
func (m GameMode) WireValue() string {
	return strconv.Itoa(int(m))
}

func (m GameMode) String() string {
	if name, ok := gameModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("GameMode(%d)", int(m))
}

// ParseGameMode accepts either the queue id ("451") or the case-insensitive
// mode name ("ConquestRanked").
func ParseGameMode(s string) (GameMode, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.Atoi(s); err == nil {
		if m := GameMode(id); m.Valid() {
			return m, nil
		}
		return 0, fmt.Errorf("%w: game mode %q", ErrUnknownValue, s)
	}
	for m, name := range gameModeNames {
		if strings.EqualFold(name, s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: game mode %q", ErrUnknownValue, s)
}

// GameModes returns all declared queues in ascending id order.
func GameModes() []GameMode {
	return []GameMode{Conquest, MOTD, Arena, DuelRanked, Assault, Joust, JoustRanked, ConquestRanked, Siege, Clash}
}
