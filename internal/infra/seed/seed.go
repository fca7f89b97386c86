// Package seed loads the questionnaire catalog and the fund categories from a YAML file
// and writes them into the database. Existing rows are left untouched, so seeding is idempotent.
package seed

import (
	"context"
	"log/slog"
	"strings"

	"advisor/config"
	"advisor/internal/domain/lifecycle"
	"advisor/internal/errors"
	"advisor/internal/infra/persistence/model"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Catalog is the content of a seed file.
type Catalog struct {
	Sections       []Section      `koanf:"sections"`
	FundCategories []FundCategory `koanf:"fundCategories"`
}

type Section struct {
	ID        int64      `koanf:"id"`
	Name      string     `koanf:"name"`
	Questions []Question `koanf:"questions"`
}

type Question struct {
	ID      int64    `koanf:"id"`
	Prompt  string   `koanf:"prompt"`
	Options []Option `koanf:"options"`
}

type Option struct {
	ID   int64  `koanf:"id"`
	Text string `koanf:"text"`
}

type FundCategory struct {
	ID          int64  `koanf:"id"`
	Name        string `koanf:"name"`
	RiskLevel   string `koanf:"riskLevel"`
	Description string `koanf:"description"`
	Funds       []Fund `koanf:"funds"`
}

type Fund struct {
	ID         int64   `koanf:"id"`
	SchemeCode string  `koanf:"schemeCode"`
	SchemeName string  `koanf:"schemeName"`
	NAV        float64 `koanf:"nav"`
}

// Load reads and validates a seed file.
func Load(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read seed file %s failed", path)
	}

	catalog := new(Catalog)
	if err := k.Unmarshal("", catalog); err != nil {
		return nil, errors.Wrapf(err, "unmarshal seed file %s failed", path)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}

// Validate checks that IDs are positive and unique per kind. Question and option IDs are global,
// which is what lets an option ID alone identify an answer.
func (c *Catalog) Validate() error {
	sectionIDs := map[int64]struct{}{}
	questionIDs := map[int64]struct{}{}
	optionIDs := map[int64]struct{}{}

	for _, s := range c.Sections {
		if err := claim(sectionIDs, "section", s.ID); err != nil {
			return err
		}
		if strings.TrimSpace(s.Name) == "" {
			return errors.Errorf("section %d has no name", s.ID)
		}
		for _, q := range s.Questions {
			if err := claim(questionIDs, "question", q.ID); err != nil {
				return err
			}
			for _, o := range q.Options {
				if err := claim(optionIDs, "option", o.ID); err != nil {
					return err
				}
			}
		}
	}

	categoryIDs := map[int64]struct{}{}
	fundIDs := map[int64]struct{}{}
	for _, fc := range c.FundCategories {
		if err := claim(categoryIDs, "fund category", fc.ID); err != nil {
			return err
		}
		for _, f := range fc.Funds {
			if err := claim(fundIDs, "fund", f.ID); err != nil {
				return err
			}
		}
	}

	return nil
}

func claim(seen map[int64]struct{}, kind string, id int64) error {
	if id <= 0 {
		return errors.Errorf("%s id must be positive, got %d", kind, id)
	}
	if _, dup := seen[id]; dup {
		return errors.Errorf("duplicate %s id %d", kind, id)
	}
	seen[id] = struct{}{}

	return nil
}

// Apply inserts the catalog in one transaction. Rows whose primary key already exists are skipped.
func Apply(ctx context.Context, db *gorm.DB, catalog *Catalog) error {
	sections, questions, options := catalog.questionnaireModels()
	categories, funds := catalog.fundModels()

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insert := tx.Clauses(clause.OnConflict{DoNothing: true})

		if len(sections) > 0 {
			if err := insert.Create(&sections).Error; err != nil {
				return errors.Wrap(err, "failed to seed sections")
			}
		}
		if len(questions) > 0 {
			if err := insert.Create(&questions).Error; err != nil {
				return errors.Wrap(err, "failed to seed questions")
			}
		}
		if len(options) > 0 {
			if err := insert.Create(&options).Error; err != nil {
				return errors.Wrap(err, "failed to seed options")
			}
		}
		if len(categories) > 0 {
			if err := insert.Create(&categories).Error; err != nil {
				return errors.Wrap(err, "failed to seed fund categories")
			}
		}
		if len(funds) > 0 {
			if err := insert.Create(&funds).Error; err != nil {
				return errors.Wrap(err, "failed to seed funds")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "seed transaction failed")
	}

	return nil
}

func (c *Catalog) questionnaireModels() ([]model.SectionModel, []model.QuestionModel, []model.OptionModel) {
	sections := make([]model.SectionModel, 0, len(c.Sections))
	var questions []model.QuestionModel
	var options []model.OptionModel

	for _, s := range c.Sections {
		sections = append(sections, model.SectionModel{ID: s.ID, Name: s.Name})
		for _, q := range s.Questions {
			questions = append(questions, model.QuestionModel{ID: q.ID, SectionID: s.ID, Prompt: q.Prompt})
			for _, o := range q.Options {
				options = append(options, model.OptionModel{ID: o.ID, QuestionID: q.ID, Text: o.Text})
			}
		}
	}

	return sections, questions, options
}

func (c *Catalog) fundModels() ([]model.FundCategoryModel, []model.FundModel) {
	categories := make([]model.FundCategoryModel, 0, len(c.FundCategories))
	var funds []model.FundModel

	for _, fc := range c.FundCategories {
		categories = append(categories, model.FundCategoryModel{
			ID:          fc.ID,
			Name:        fc.Name,
			RiskLevel:   fc.RiskLevel,
			Description: fc.Description,
		})
		for _, f := range fc.Funds {
			funds = append(funds, model.FundModel{
				ID:         f.ID,
				CategoryID: fc.ID,
				SchemeCode: f.SchemeCode,
				SchemeName: f.SchemeName,
				NAV:        f.NAV,
			})
		}
	}

	return categories, funds
}

// Params defines the dependencies of Register.
type Params struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// Register seeds the database on startup when seed.path is configured.
func Register(params Params) {
	if params.Config.Seed == nil || strings.TrimSpace(params.Config.Seed.Path) == "" {
		return
	}
	path := params.Config.Seed.Path

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			catalog, err := Load(path)
			if err != nil {
				return err
			}
			if err := Apply(ctx, params.DB, catalog); err != nil {
				return err
			}

			params.Logger.Info("Catalog seeded",
				slog.String("path", path),
				slog.Int("sections", len(catalog.Sections)),
				slog.Int("fundCategories", len(catalog.FundCategories)),
			)

			return nil
		},
	})
}
