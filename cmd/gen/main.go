package main

import (
	"fitlife/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.WeightHistoryModel{},
		model.AdminModel{},
		model.ExerciseModel{},
		model.FoodLogModel{},
		model.DailyStatModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
