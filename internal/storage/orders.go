package storage

import (
	"database/sql"
	"fmt"
	"log"

	"sabor-oriental/internal/domain"
)

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, COALESCE(user_name, ''), COALESCE(user_photo, ''), total_value,
		       date, status, order_rating, COALESCE(order_feedback, '')
		FROM pedidos
		ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		var rating sql.NullInt64
		if err := rows.Scan(&o.ID, &o.UserID, &o.UserName, &o.UserPhoto, &o.TotalValue,
			&o.Date, &o.Status, &rating, &o.OrderFeedback); err != nil {
			log.Printf("[storage] pedido scan error: %v", err)
			continue
		}
		if rating.Valid {
			v := int(rating.Int64)
			o.OrderRating = &v
		}
		items, err := r.listOrderItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var o domain.Order
	var rating sql.NullInt64
	err := r.DB.QueryRow(`
		SELECT id, user_id, COALESCE(user_name, ''), COALESCE(user_photo, ''), total_value,
		       date, status, order_rating, COALESCE(order_feedback, '')
		FROM pedidos
		WHERE id = $1`, id).
		Scan(&o.ID, &o.UserID, &o.UserName, &o.UserPhoto, &o.TotalValue,
			&o.Date, &o.Status, &rating, &o.OrderFeedback)
	if err != nil {
		return nil, err
	}
	if rating.Valid {
		v := int(rating.Int64)
		o.OrderRating = &v
	}
	items, err := r.listOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *PostgresRepository) listOrderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT prato_id, COALESCE(name, ''), price, quantity, COALESCE(image_url, '')
		FROM pedido_itens
		WHERE pedido_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Quantity, &item.ImageURL); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// InsertOrder persists the order header and its line-item snapshot in one
// transaction. The assigned id and canonical date are written back.
func (r *PostgresRepository) InsertOrder(o *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO pedidos (user_id, user_name, user_photo, total_value, date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date
	`, o.UserID, o.UserName, o.UserPhoto, o.TotalValue, o.Date, o.Status).Scan(&o.ID, &o.Date)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}

	for _, item := range o.Items {
		if _, err := tx.Exec(`
			INSERT INTO pedido_itens (pedido_id, prato_id, name, price, quantity, image_url)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, o.ID, item.ID, item.Name, item.Price, item.Quantity, item.ImageURL); err != nil {
			return fmt.Errorf("insert pedido item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) SetOrderRating(id, rating int, feedback string) error {
	result, err := r.DB.Exec(`
		UPDATE pedidos
		SET order_rating=$1, order_feedback=$2, status=$3
		WHERE id=$4
	`, rating, feedback, domain.StatusRated, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) GetOrderQRCode(id int) ([]byte, error) {
	var png []byte
	err := r.DB.QueryRow(`SELECT qr_code FROM pedidos WHERE id = $1`, id).Scan(&png)
	if err != nil {
		return nil, err
	}
	return png, nil
}

func (r *PostgresRepository) StoreOrderQRCode(id int, png []byte) error {
	_, err := r.DB.Exec(`UPDATE pedidos SET qr_code = $1 WHERE id = $2`, png, id)
	return err
}
