package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedGroup struct {
	Name        string
	Description string
	Children    []seedGroup
}

var seedGroups = []seedGroup{
	{
		Name:        "Общие регламенты",
		Description: "Правила, действующие для всех сотрудников",
		Children: []seedGroup{
			{Name: "Внутренний распорядок"},
			{Name: "Информационная безопасность"},
		},
	},
	{
		Name:        "Операционные процессы",
		Description: "Регламенты рабочих процессов групп",
		Children: []seedGroup{
			{Name: "Обработка заказов"},
			{Name: "Работа с клиентами"},
		},
	},
}

type seedRegulation struct {
	Title     string
	Content   string
	Keywords  []string
	GroupName string
}

var seedRegulations = []seedRegulation{
	{
		Title:     "Правила внутреннего распорядка",
		Content:   "Рабочий день начинается в 9:00. Удалённая работа согласуется с руководителем группы.",
		Keywords:  []string{"распорядок", "график", "офис"},
		GroupName: "Внутренний распорядок",
	},
	{
		Title:     "Политика паролей",
		Content:   "Пароль не короче 12 символов, смена раз в 90 дней. Передача учётных данных запрещена.",
		Keywords:  []string{"пароль", "безопасность", "доступ"},
		GroupName: "Информационная безопасность",
	},
	{
		Title:     "Регламент обработки заказа",
		Content:   "Заказ берётся в работу в течение 15 минут после поступления. Эскалация лидеру группы после 2 часов простоя.",
		Keywords:  []string{"заказ", "обработка", "эскалация"},
		GroupName: "Обработка заказов",
	},
}

type seedPosition struct {
	Title       string
	Description string
}

var seedPositions = []seedPosition{
	{Title: "Оператор", Description: "Обработка входящих заказов"},
	{Title: "Старший оператор", Description: "Контроль качества обработки и наставничество"},
	{Title: "Менеджер по работе с клиентами", Description: "Сопровождение ключевых клиентов"},
}

func upsertGroup(ctx context.Context, db *pgxpool.Pool, g seedGroup, parentID *uint64) (uint64, error) {
	var id uint64
	err := db.QueryRow(ctx, "SELECT id FROM regulation_groups WHERE name = $1", g.Name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("ошибка при проверке группы %s: %w", g.Name, err)
	}

	var description *string
	if g.Description != "" {
		description = &g.Description
	}
	err = db.QueryRow(ctx,
		"INSERT INTO regulation_groups (name, description, parent_id) VALUES ($1, $2, $3) RETURNING id",
		g.Name, description, parentID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать группу %s: %w", g.Name, err)
	}
	log.Printf("  - Группа регламентов %q создана.", g.Name)
	return id, nil
}

// seedRegulationsFn наполняет дерево групп, базовые регламенты и должности.
func seedRegulationsFn(ctx context.Context, db *pgxpool.Pool) error {
	groupIDs := make(map[string]uint64)
	for _, root := range seedGroups {
		rootID, err := upsertGroup(ctx, db, root, nil)
		if err != nil {
			return err
		}
		groupIDs[root.Name] = rootID
		for _, child := range root.Children {
			childID, err := upsertGroup(ctx, db, child, &rootID)
			if err != nil {
				return err
			}
			groupIDs[child.Name] = childID
		}
	}

	for _, r := range seedRegulations {
		groupID, ok := groupIDs[r.GroupName]
		if !ok {
			return fmt.Errorf("группа %q для регламента %q не найдена", r.GroupName, r.Title)
		}

		var existingID uint64
		err := db.QueryRow(ctx, "SELECT id FROM regulations WHERE title = $1", r.Title).Scan(&existingID)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("ошибка при проверке регламента %q: %w", r.Title, err)
		}

		_, err = db.Exec(ctx,
			"INSERT INTO regulations (title, content, keywords, group_id) VALUES ($1, $2, $3, $4)",
			r.Title, r.Content, r.Keywords, groupID)
		if err != nil {
			return fmt.Errorf("не удалось создать регламент %q: %w", r.Title, err)
		}
		log.Printf("  - Регламент %q создан.", r.Title)
	}

	for _, p := range seedPositions {
		var existingID uint64
		err := db.QueryRow(ctx, "SELECT id FROM positions WHERE title = $1", p.Title).Scan(&existingID)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("ошибка при проверке должности %q: %w", p.Title, err)
		}

		_, err = db.Exec(ctx,
			"INSERT INTO positions (title, description) VALUES ($1, $2)", p.Title, p.Description)
		if err != nil {
			return fmt.Errorf("не удалось создать должность %q: %w", p.Title, err)
		}
		log.Printf("  - Должность %q создана.", p.Title)
	}
	return nil
}
