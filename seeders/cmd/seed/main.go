package main

import (
	"flag"
	"log"

	"intranet-portal/pkg/config"
	"intranet-portal/pkg/database/postgresql"
	"intranet-portal/seeders"
)

func main() {
	runUsers := flag.Bool("users", false, "Создать администратора и стартовый состав сотрудников")
	runKB := flag.Bool("kb", false, "Наполнить базу знаний (группы, регламенты, должности)")
	runAll := flag.Bool("all", false, "Запустить все сидеры")
	flag.Parse()

	if !*runUsers && !*runKB && !*runAll {
		log.Println("Не выбран ни один сидер для запуска.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры:")
		log.Println("  go run ./seeders/cmd/seed -users")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *runUsers || *runAll {
		seeders.SeedUsers(db)
	}
	if *runKB || *runAll {
		seeders.SeedKnowledgeBase(db)
	}

	log.Println("Готово.")
}
