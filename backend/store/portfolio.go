package store

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm/clause"

	"projectassistant/backend/models"
)

// SavePortfolio replaces the user's portfolio record wholesale.
func (s *Store) SavePortfolio(ctx context.Context, userID uint, data interface{}) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode portfolio: %w", err)
	}
	row := models.PortfolioRecord{
		UserID:    userID,
		Data:      datatypes.JSON(raw),
		UpdatedAt: s.now(),
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save portfolio: %w", err)
	}
	return nil
}

func (s *Store) GetPortfolio(ctx context.Context, userID uint, out interface{}) error {
	var row models.PortfolioRecord
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		return notFound(err)
	}
	if err := json.Unmarshal(row.Data, out); err != nil {
		return fmt.Errorf("decode portfolio: %w", err)
	}
	return nil
}

// GetPortfolioTemplate returns the active template with the given name, or the
// first active one when name is empty.
func (s *Store) GetPortfolioTemplate(ctx context.Context, name string) (*models.PortfolioTemplate, error) {
	q := s.db.WithContext(ctx).Where("active = ?", true)
	if name != "" {
		q = q.Where("name = ?", name)
	}
	var tmpl models.PortfolioTemplate
	if err := q.Order("id ASC").First(&tmpl).Error; err != nil {
		return nil, notFound(err)
	}
	return &tmpl, nil
}

func (s *Store) ListPortfolioTemplates(ctx context.Context) ([]models.PortfolioTemplate, error) {
	templates := []models.PortfolioTemplate{}
	if err := s.db.WithContext(ctx).Where("active = ?", true).Order("id ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

func defaultTemplates() []models.PortfolioTemplate {
	return []models.PortfolioTemplate{
		{
			Name:   "Modern Portfolio",
			Type:   "modern",
			HTML:   modernTemplateHTML,
			CSS:    modernTemplateCSS,
			Active: true,
		},
	}
}

const modernTemplateHTML = `<header class="hero">
  <h1>[[name]]</h1>
  <p class="tagline">[[contact.bio]]</p>
</header>
<section class="education">
  <h2>Education</h2>
  <p>[[education.college]]</p>
  <p>[[education.branch]] &middot; [[education.year]]</p>
</section>
<section class="skills">
  <h2>Skills</h2>
  <div class="skill-list">[[skills]]</div>
</section>
<section class="projects">
  <h2>Projects</h2>
  <div class="project-grid">[[projects]]</div>
</section>
<footer class="contact">
  <p>Email: [[contact.email]]</p>
  <p>GitHub: [[contact.github]]</p>
  <p>LinkedIn: [[contact.linkedin]]</p>
</footer>`

const modernTemplateCSS = `body { font-family: 'Segoe UI', sans-serif; margin: 0; color: #222; background: #f7f8fc; }
.hero { background: linear-gradient(135deg, #667eea, #764ba2); color: #fff; padding: 4rem 2rem; text-align: center; }
section { max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
.skill-list { display: flex; flex-wrap: wrap; gap: .5rem; }
.skill-tag { background: #667eea; color: #fff; padding: .3rem .8rem; border-radius: 1rem; }
.project-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 1rem; }
.project-card { background: #fff; border-radius: .5rem; padding: 1rem; box-shadow: 0 2px 6px rgba(0,0,0,.08); }
.contact { text-align: center; padding: 2rem; color: #555; }`
