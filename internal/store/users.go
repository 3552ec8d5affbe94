package store

import (
	"time"

	"github.com/gocql/gocql"

	"sent_back_end/internal/database"
	"sent_back_end/internal/models"
)

// UserIDByEmail retourne l'user_id associé à un email (table de lookup).
func (Scylla) UserIDByEmail(email string) (gocql.UUID, error) {
	var userID gocql.UUID

	session, err := database.GetUsersSession()
	if err != nil {
		return userID, err
	}
	return userID, session.Query(database.StmtUserIDByEmail, email).Scan(&userID)
}

// UserByID retourne un utilisateur complet (mot de passe hashé inclus).
func (Scylla) UserByID(userID gocql.UUID) (*models.User, error) {
	u := models.User{ID: userID}

	session, err := database.GetUsersSession()
	if err != nil {
		return nil, err
	}
	if err := session.Query(database.StmtUserByID, userID).
		Scan(&u.Email, &u.Password, &u.Name, &u.Role); err != nil {
		return nil, err
	}
	return &u, nil
}

// InsertUser crée un utilisateur et sa ligne de lookup par email.
func (Scylla) InsertUser(u models.User) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	now := time.Now()
	if err := session.Query(database.StmtInsertUser,
		u.ID, u.Email, u.Password, u.Name, u.Role, now, now).Exec(); err != nil {
		return err
	}
	return session.Query(`INSERT INTO users_by_email (email, user_id) VALUES (?, ?)`, u.Email, u.ID).Exec()
}

// UpdateUserPassword remplace le hash du mot de passe.
func (Scylla) UpdateUserPassword(userID gocql.UUID, hashedPassword string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}
	return session.Query(`UPDATE users SET password = ?, updated_at = ? WHERE user_id = ?`,
		hashedPassword, time.Now(), userID).Exec()
}
