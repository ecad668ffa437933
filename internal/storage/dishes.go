package storage

import (
	"database/sql"

	"sabor-oriental/internal/domain"
)

func (r *PostgresRepository) ListDishes() ([]domain.Dish, error) {
	rows, err := r.DB.Query(`
		SELECT id, nome, COALESCE(descricao, ''), preco, COALESCE(category, ''), COALESCE(imagem, '')
		FROM pratos
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		var d domain.Dish
		var preco float64
		if err := rows.Scan(&d.ID, &d.Nome, &d.Descricao, &preco, &d.Category, &d.Imagem); err != nil {
			continue
		}
		d.Preco = domain.Price(preco)
		dishes = append(dishes, d)
	}
	return dishes, nil
}

func (r *PostgresRepository) GetDish(id int) (*domain.Dish, error) {
	var d domain.Dish
	var preco float64
	err := r.DB.QueryRow(`
		SELECT id, nome, COALESCE(descricao, ''), preco, COALESCE(category, ''), COALESCE(imagem, '')
		FROM pratos
		WHERE id = $1`, id).
		Scan(&d.ID, &d.Nome, &d.Descricao, &preco, &d.Category, &d.Imagem)
	if err != nil {
		return nil, err
	}
	d.Preco = domain.Price(preco)
	return &d, nil
}

func (r *PostgresRepository) InsertDish(d *domain.Dish) error {
	return r.DB.QueryRow(`
		INSERT INTO pratos (nome, descricao, preco, category, imagem)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, d.Nome, d.Descricao, float64(d.Preco), d.Category, d.Imagem).Scan(&d.ID)
}

func (r *PostgresRepository) UpdateDish(id int, d *domain.Dish) error {
	result, err := r.DB.Exec(`
		UPDATE pratos
		SET nome=$1, descricao=$2, preco=$3, category=$4, imagem=$5
		WHERE id=$6
	`, d.Nome, d.Descricao, float64(d.Preco), d.Category, d.Imagem, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	d.ID = id
	return nil
}

func (r *PostgresRepository) DeleteDish(id int) error {
	result, err := r.DB.Exec(`DELETE FROM pratos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
