package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedUsers создаёт администратора и стартовый состав сотрудников.
func SeedUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Запуск наполнения пользователей...")

	if err := seedUsersFn(ctx, db); err != nil {
		log.Fatalf("Ошибка наполнения пользователей: %v", err)
	}
	log.Println("Наполнение пользователей завершено.")
}

// SeedKnowledgeBase наполняет дерево групп, регламенты и должности.
func SeedKnowledgeBase(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("Запуск наполнения базы знаний...")

	if err := seedRegulationsFn(ctx, db); err != nil {
		log.Fatalf("Ошибка наполнения базы знаний: %v", err)
	}
	log.Println("Наполнение базы знаний завершено.")
}
