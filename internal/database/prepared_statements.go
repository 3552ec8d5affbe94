package database

// Textes des requêtes chaudes, partagés entre le store et le bootstrap.
// gocql prépare et met en cache chaque statement par son texte côté
// session ; une *gocql.Query n'est pas sûre entre goroutines (Bind mute
// la même instance), on ne partage donc que le texte.
const (
	StmtUserIDByEmail = `SELECT user_id FROM users_by_email WHERE email = ?`
	StmtUserByID      = `SELECT email, password, name, role FROM users WHERE user_id = ?`
	StmtInsertUser    = `INSERT INTO users (user_id, email, password, name, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
)
