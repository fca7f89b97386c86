package model

// All lists every persisted model in dependency order, for AutoMigrate and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&SectionModel{},
		&QuestionModel{},
		&OptionModel{},
		&UserResponseModel{},
		&FundCategoryModel{},
		&FundModel{},
	}
}
