package service

import (
	"jokes-web/database/model"
	"jokes-web/util/random"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JokeService answers joke reads and owns joke creation and deletion.
type JokeService struct {
	db *gorm.DB
}

func NewJokeService(db *gorm.DB) *JokeService {
	return &JokeService{db: db}
}

// GetLatestJokes returns the n most recently created jokes, newest first,
// with only id and name populated.
func (s *JokeService) GetLatestJokes(n int) ([]model.Joke, error) {
	var jokes []model.Joke
	err := s.db.Model(model.Joke{}).
		Select("id", "name").
		Order("created_at desc").
		Limit(n).
		Find(&jokes).
		Error
	if err != nil {
		return nil, err
	}
	return jokes, nil
}

func (s *JokeService) GetJoke(id string) (*model.Joke, error) {
	joke := &model.Joke{}
	err := s.db.Model(model.Joke{}).
		Where("id = ?", id).
		First(joke).
		Error
	if err != nil {
		return nil, err
	}
	return joke, nil
}

// GetRandomJoke picks a uniformly random row. Returns ErrRecordNotFound when
// the table is empty; with exactly one joke the pick is deterministic.
func (s *JokeService) GetRandomJoke() (*model.Joke, error) {
	count, err := s.CountJokes()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	offset := random.Num(int(count))
	joke := &model.Joke{}
	err = s.db.Model(model.Joke{}).
		Offset(offset).
		Limit(1).
		First(joke).
		Error
	if err != nil {
		return nil, err
	}
	return joke, nil
}

func (s *JokeService) CreateJoke(name string, content string, jokesterId int) (*model.Joke, error) {
	joke := &model.Joke{
		Id:         uuid.NewString(),
		Name:       name,
		Content:    content,
		JokesterId: &jokesterId,
	}
	if err := s.db.Create(joke).Error; err != nil {
		return nil, err
	}
	return joke, nil
}

func (s *JokeService) DeleteJoke(id string) error {
	return s.db.Delete(&model.Joke{}, "id = ?", id).Error
}

func (s *JokeService) CountJokes() (int64, error) {
	var count int64
	err := s.db.Model(model.Joke{}).Count(&count).Error
	return count, err
}
