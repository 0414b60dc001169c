package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"intranet-portal/pkg/constants"
	"intranet-portal/pkg/utils"
)

type seedUser struct {
	Email       string
	Name        string
	Role        string
	IsOwner     bool
	GroupNumber *int
}

func groupPtr(n int) *int { return &n }

var seedUsers = []seedUser{
	{Email: "admin@portal.local", Name: "Администратор Портала", Role: constants.RoleAdmin},
	{Email: "owner@portal.local", Name: "Рустам Каримов", Role: constants.RoleOwner, IsOwner: true},
	{Email: "ceo@portal.local", Name: "Дилшод Назаров", Role: constants.RoleCEO},
	{Email: "director@portal.local", Name: "Фаррух Азимов", Role: constants.RoleDirector},
	{Email: "leader1@portal.local", Name: "Манижа Сафарова", Role: constants.RoleGroupLeader, GroupNumber: groupPtr(1)},
	{Email: "leader2@portal.local", Name: "Бахтиёр Рахимов", Role: constants.RoleGroupLeader, GroupNumber: groupPtr(2)},
	{Email: "member1@portal.local", Name: "Нигора Юсупова", Role: constants.RoleMember, GroupNumber: groupPtr(1)},
	{Email: "member2@portal.local", Name: "Сухроб Олимов", Role: constants.RoleMember, GroupNumber: groupPtr(1)},
	{Email: "member3@portal.local", Name: "Зарина Хакимова", Role: constants.RoleMember, GroupNumber: groupPtr(2)},
}

const seedPassword = "Portal123!"

// seedUsersFn создаёт стартовый состав: администратора, руководство и две группы.
// Уже существующие (по email) пользователи пропускаются.
func seedUsersFn(ctx context.Context, db *pgxpool.Pool) error {
	hashed, err := utils.HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("не удалось захешировать пароль: %w", err)
	}

	for _, u := range seedUsers {
		var existingID uint64
		err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", u.Email).Scan(&existingID)
		if err == nil {
			log.Printf("  - Пользователь %s уже существует. Пропускаем.", u.Email)
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("ошибка при проверке пользователя %s: %w", u.Email, err)
		}

		_, err = db.Exec(ctx, `
			INSERT INTO users (email, password, name, role, is_owner, group_number, birth_date, employment_date)
			VALUES ($1, $2, $3, $4, $5, $6, '1990-01-01', '2020-01-01')`,
			u.Email, hashed, u.Name, u.Role, u.IsOwner, u.GroupNumber)
		if err != nil {
			return fmt.Errorf("не удалось создать пользователя %s: %w", u.Email, err)
		}
		log.Printf("  - Пользователь %s (%s) создан.", u.Name, u.Role)
	}
	return nil
}
