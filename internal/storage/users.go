package storage

import (
	"database/sql"

	"github.com/lib/pq"

	"sabor-oriental/internal/domain"
)

const userColumns = `id, name, email, password, COALESCE(phone, ''), COALESCE(address, ''), role, COALESCE(profile_picture, '')`

func scanUser(row interface{ Scan(...any) error }, u *domain.User) error {
	return row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Phone, &u.Address, &u.Role, &u.ProfilePicture)
}

func (r *PostgresRepository) ListUsers() ([]domain.User, error) {
	rows, err := r.DB.Query(`SELECT ` + userColumns + ` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *PostgresRepository) GetUser(id int) (*domain.User, error) {
	var u domain.User
	err := scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id), &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email), &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// IsUniqueViolation reports the unique_violation class from Postgres so the
// service can distinguish a taken email from other failures.
func IsUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

func (r *PostgresRepository) InsertUser(u *domain.User) error {
	return r.DB.QueryRow(`
		INSERT INTO users (name, email, password, phone, address, role, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, u.Name, u.Email, u.Password, u.Phone, u.Address, u.Role, u.ProfilePicture).Scan(&u.ID)
}

func (r *PostgresRepository) UpdateUser(id int, u *domain.User) error {
	result, err := r.DB.Exec(`
		UPDATE users
		SET name=$1, email=$2, password=$3, phone=$4, address=$5, role=$6, profile_picture=$7
		WHERE id=$8
	`, u.Name, u.Email, u.Password, u.Phone, u.Address, u.Role, u.ProfilePicture, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	u.ID = id
	return nil
}

func (r *PostgresRepository) DeleteUser(id int) error {
	result, err := r.DB.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) HasAdmin() (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE role = 'admin')`).Scan(&exists)
	return exists, err
}
