package database

import (
	"strings"
	"testing"
)

// Les requêtes chaudes sont partagées en texte seul : chaque appel du
// store construit sa propre *gocql.Query. On fige ici le nombre de
// marqueurs, que le store remplit positionnellement.
func TestHotStatementPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		stmt string
		want int
	}{
		{name: "user id by email", stmt: StmtUserIDByEmail, want: 1},
		{name: "user by id", stmt: StmtUserByID, want: 1},
		{name: "insert user", stmt: StmtInsertUser, want: 7},
	}

	for _, tt := range tests {
		if got := strings.Count(tt.stmt, "?"); got != tt.want {
			t.Errorf("%s: %d placeholders, want %d", tt.name, got, tt.want)
		}
	}
}
