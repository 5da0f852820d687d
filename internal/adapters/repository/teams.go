package repository

import "github.com/okian/gridiron/internal/domain/model"

// DefaultTeams returns the current 32-team league directory. Historical
// relocations and renames are out of scope; feeds using older names
// simply produce rows outside the division tables.
func DefaultTeams() []model.TeamInfo {
	return []model.TeamInfo{
		{Name: "Buffalo Bills", Abbr: "BUF", Conference: model.AFC, Division: model.East},
		{Name: "Miami Dolphins", Abbr: "MIA", Conference: model.AFC, Division: model.East},
		{Name: "New England Patriots", Abbr: "NE", Conference: model.AFC, Division: model.East},
		{Name: "New York Jets", Abbr: "NYJ", Conference: model.AFC, Division: model.East},

		{Name: "Baltimore Ravens", Abbr: "BAL", Conference: model.AFC, Division: model.North},
		{Name: "Cincinnati Bengals", Abbr: "CIN", Conference: model.AFC, Division: model.North},
		{Name: "Cleveland Browns", Abbr: "CLE", Conference: model.AFC, Division: model.North},
		{Name: "Pittsburgh Steelers", Abbr: "PIT", Conference: model.AFC, Division: model.North},

		{Name: "Houston Texans", Abbr: "HOU", Conference: model.AFC, Division: model.South},
		{Name: "Indianapolis Colts", Abbr: "IND", Conference: model.AFC, Division: model.South},
		{Name: "Jacksonville Jaguars", Abbr: "JAX", Conference: model.AFC, Division: model.South},
		{Name: "Tennessee Titans", Abbr: "TEN", Conference: model.AFC, Division: model.South},

		{Name: "Denver Broncos", Abbr: "DEN", Conference: model.AFC, Division: model.West},
		{Name: "Kansas City Chiefs", Abbr: "KC", Conference: model.AFC, Division: model.West},
		{Name: "Las Vegas Raiders", Abbr: "LV", Conference: model.AFC, Division: model.West},
		{Name: "Los Angeles Chargers", Abbr: "LAC", Conference: model.AFC, Division: model.West},

		{Name: "Dallas Cowboys", Abbr: "DAL", Conference: model.NFC, Division: model.East},
		{Name: "New York Giants", Abbr: "NYG", Conference: model.NFC, Division: model.East},
		{Name: "Philadelphia Eagles", Abbr: "PHI", Conference: model.NFC, Division: model.East},
		{Name: "Washington Commanders", Abbr: "WAS", Conference: model.NFC, Division: model.East},

		{Name: "Chicago Bears", Abbr: "CHI", Conference: model.NFC, Division: model.North},
		{Name: "Detroit Lions", Abbr: "DET", Conference: model.NFC, Division: model.North},
		{Name: "Green Bay Packers", Abbr: "GB", Conference: model.NFC, Division: model.North},
		{Name: "Minnesota Vikings", Abbr: "MIN", Conference: model.NFC, Division: model.North},

		{Name: "Atlanta Falcons", Abbr: "ATL", Conference: model.NFC, Division: model.South},
		{Name: "Carolina Panthers", Abbr: "CAR", Conference: model.NFC, Division: model.South},
		{Name: "New Orleans Saints", Abbr: "NO", Conference: model.NFC, Division: model.South},
		{Name: "Tampa Bay Buccaneers", Abbr: "TB", Conference: model.NFC, Division: model.South},

		{Name: "Arizona Cardinals", Abbr: "ARI", Conference: model.NFC, Division: model.West},
		{Name: "Los Angeles Rams", Abbr: "LAR", Conference: model.NFC, Division: model.West},
		{Name: "San Francisco 49ers", Abbr: "SF", Conference: model.NFC, Division: model.West},
		{Name: "Seattle Seahawks", Abbr: "SEA", Conference: model.NFC, Division: model.West},
	}
}
