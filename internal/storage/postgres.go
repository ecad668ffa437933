package storage

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			phone TEXT,
			address TEXT,
			role TEXT NOT NULL DEFAULT 'user',
			profile_picture TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS pratos (
			id SERIAL PRIMARY KEY,
			nome TEXT NOT NULL,
			descricao TEXT,
			preco DOUBLE PRECISION NOT NULL DEFAULT 0,
			category TEXT,
			imagem TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS pedidos (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			user_name TEXT,
			user_photo TEXT,
			total_value DOUBLE PRECISION NOT NULL DEFAULT 0,
			date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			status TEXT NOT NULL DEFAULT 'confirmado',
			order_rating INTEGER,
			order_feedback TEXT,
			qr_code BYTEA
		)`,
		`CREATE TABLE IF NOT EXISTS pedido_itens (
			id SERIAL PRIMARY KEY,
			pedido_id INTEGER NOT NULL REFERENCES pedidos(id) ON DELETE CASCADE,
			prato_id INTEGER,
			name TEXT,
			price DOUBLE PRECISION,
			quantity INTEGER,
			image_url TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
