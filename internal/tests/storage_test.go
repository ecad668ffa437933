package tests

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"sabor-oriental/internal/domain"
	"sabor-oriental/internal/storage"
)

func TestPostgresRepository_ListDishes(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "nome", "descricao", "preco", "category", "imagem"}).
		AddRow(1, "Guioza", "Pastéis orientais", 24.90, "Entradas", "/img/guioza.png").
		AddRow(2, "Yakissoba de Frango", "", 38.50, "Yakissoba", "")

	dbMock.ExpectQuery("SELECT (.+) FROM pratos").WillReturnRows(rows)

	repo := storage.NewPostgresRepository(db)
	dishes, err := repo.ListDishes()

	assert.NoError(t, err)
	assert.Len(t, dishes, 2)
	assert.Equal(t, "Guioza", dishes[0].Nome)
	assert.Equal(t, domain.Price(24.90), dishes[0].Preco)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestPostgresRepository_InsertDish(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("INSERT INTO pratos").
		WithArgs("Guioza", "Pastéis orientais", 24.90, "Entradas", "/img/guioza.png").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	repo := storage.NewPostgresRepository(db)
	dish := &domain.Dish{
		Nome:      "Guioza",
		Descricao: "Pastéis orientais",
		Preco:     24.90,
		Category:  "Entradas",
		Imagem:    "/img/guioza.png",
	}

	assert.NoError(t, repo.InsertDish(dish))
	assert.Equal(t, 5, dish.ID)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestPostgresRepository_InsertOrder(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()

	dbMock.ExpectBegin()
	dbMock.ExpectQuery("INSERT INTO pedidos").
		WithArgs(7, "Ana", "", 49.80, sqlmock.AnyArg(), domain.StatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date"}).AddRow(42, now))
	dbMock.ExpectExec("INSERT INTO pedido_itens").
		WithArgs(42, 1, "Guioza", 24.90, 2, "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	dbMock.ExpectCommit()

	repo := storage.NewPostgresRepository(db)
	order := &domain.Order{
		UserID:     7,
		UserName:   "Ana",
		TotalValue: 49.80,
		Date:       now,
		Status:     domain.StatusConfirmed,
		Items: []domain.OrderItem{
			{ID: 1, Name: "Guioza", Price: 24.90, Quantity: 2},
		},
	}

	assert.NoError(t, repo.InsertOrder(order))
	assert.Equal(t, 42, order.ID)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestPostgresRepository_SetOrderRating(t *testing.T) {
	t.Run("updates_existing_order", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectExec("UPDATE pedidos").
			WithArgs(4, "bom", domain.StatusRated, 42).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := storage.NewPostgresRepository(db)
		assert.NoError(t, repo.SetOrderRating(42, 4, "bom"))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("missing_order_reports_no_rows", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectExec("UPDATE pedidos").
			WithArgs(4, "bom", domain.StatusRated, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := storage.NewPostgresRepository(db)
		assert.ErrorIs(t, repo.SetOrderRating(99, 4, "bom"), sql.ErrNoRows)
	})
}

func TestPostgresRepository_GetUserByEmail(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "phone", "address", "role", "profile_picture"}).
		AddRow(7, "Ana", "ana@example.com", "segredo", "", "", "user", "")

	dbMock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("ana@example.com").
		WillReturnRows(rows)

	repo := storage.NewPostgresRepository(db)
	user, err := repo.GetUserByEmail("ana@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, domain.RoleUser, user.Role)
}
