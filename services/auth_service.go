package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Letitbe098/Fitness-Tracker/models"
	"github.com/Letitbe098/Fitness-Tracker/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type RegisterInput struct {
	Name          string   `json:"name" binding:"required,min=2"`
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required,min=6"`
	Age           int      `json:"age" binding:"required,gte=1,lte=120"`
	Height        float64  `json:"height" binding:"required,gte=50,lte=300"`
	CurrentWeight float64  `json:"currentWeight" binding:"required,gte=20,lte=500"`
	GoalWeight    float64  `json:"goalWeight" binding:"required,gte=20,lte=500"`
	ActivityLevel string   `json:"activityLevel"`
	Goals         []string `json:"goals"`
}

// Register hashes the password and stores a new user. The binding tags
// on RegisterInput enforce the documented validation ranges before this
// runs.
func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check email: %w", err)
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	level := input.ActivityLevel
	if level == "" {
		level = models.ActivityModerate
	}

	user := models.User{
		PublicID:        uuid.NewString(),
		Name:            input.Name,
		Email:           email,
		Password:        hashed,
		Age:             input.Age,
		HeightCm:        input.Height,
		CurrentWeightKg: input.CurrentWeight,
		GoalWeightKg:    input.GoalWeight,
		ActivityLevel:   level,
	}
	user.SetGoalLabels(input.Goals)

	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return &user, token, nil
}

// Authenticate checks the credentials and issues a JWT. The same error
// covers unknown email and wrong password.
func (s *AuthService) Authenticate(email, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return &user, token, nil
}
