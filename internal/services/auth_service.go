package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/williamjames2004/sjcaisymposium/internal/models"
	"github.com/williamjames2004/sjcaisymposium/internal/repository"
)

// AuthService handles leader and admin credentials: signup validation,
// password hashing and JWT issue/verify.
type AuthService struct {
	leaders       repository.LeaderRepository
	admins        repository.AdminRepository
	colleges      repository.CollegeRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewAuthService(
	leaders repository.LeaderRepository,
	admins repository.AdminRepository,
	colleges repository.CollegeRepository,
	jwtSecret string,
	jwtExpiration time.Duration,
) *AuthService {
	return &AuthService{
		leaders:       leaders,
		admins:        admins,
		colleges:      colleges,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// LeaderSignupInput carries the leader registration form.
type LeaderSignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	MobileNumber    string `json:"mobilenumber"`
	Department      string `json:"department"`
	College         string `json:"college"`
	Shift           string `json:"shift"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

// AuthResult is returned on a successful login.
type AuthResult struct {
	UserID string `json:"userid"`
	Token  string `json:"token"`
	Role   int    `json:"role,omitempty"`
}

// Claims is the decoded content of a verified token.
type Claims struct {
	UserID    string
	Role      string // "user" or "admin"
	AdminRole int    // 1 or 2, admins only
}

// RegisterLeader validates the signup form, enforces email/mobile/group
// uniqueness, and creates the leader with a generated LD id.
func (s *AuthService) RegisterLeader(input LeaderSignupInput) (string, error) {
	if input.Name == "" || input.Email == "" || input.MobileNumber == "" ||
		input.Department == "" || input.College == "" || input.Shift == "" ||
		input.Password == "" || input.ConfirmPassword == "" {
		return "", fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if msg := validateName(input.Name); msg != "" {
		return "", fmt.Errorf("%w: %s", ErrValidation, msg)
	}
	if msg := validateEmail(input.Email); msg != "" {
		return "", fmt.Errorf("%w: %s", ErrValidation, msg)
	}
	if msg := validateMobileNumber(input.MobileNumber); msg != "" {
		return "", fmt.Errorf("%w: %s", ErrValidation, msg)
	}
	if !models.ValidDepartment(strings.TrimSpace(input.Department)) {
		return "", fmt.Errorf("%w: department must be one of %s", ErrValidation, strings.Join(models.Departments, ", "))
	}
	if msg := validateField(input.College, "College"); msg != "" {
		return "", fmt.Errorf("%w: %s", ErrValidation, msg)
	}
	shift := strings.TrimSpace(input.Shift)
	if shift != "1" && shift != "2" {
		return "", fmt.Errorf("%w: shift must be 1 or 2", ErrValidation)
	}
	if msg := validatePassword(input.Password); msg != "" {
		return "", fmt.Errorf("%w: %s", ErrValidation, msg)
	}
	if input.Password != input.ConfirmPassword {
		return "", fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	mobile := digitsOnly(input.MobileNumber)
	college := strings.TrimSpace(input.College)
	department := strings.TrimSpace(input.Department)

	if _, err := s.leaders.GetByEmail(email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if _, err := s.leaders.GetByMobile(mobile); err == nil {
		return "", ErrMobileTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if _, err := s.leaders.GetByGroup(college, department, shift); err == nil {
		return "", ErrGroupTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.generateLeaderID()
	if err != nil {
		return "", err
	}

	leader := &models.Leader{
		UserID:       userID,
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		MobileNumber: mobile,
		Department:   department,
		College:      college,
		Shift:        shift,
		Password:     string(hash),
	}
	if err := s.leaders.Create(leader); err != nil {
		return "", err
	}

	// Best-effort: flip the college's registered flag.
	if err := s.colleges.MarkRegistered(college); err != nil {
		log.Printf("[signup] failed to mark college %q registered: %v", college, err)
	}

	return userID, nil
}

// generateLeaderID makes an LD<timestamp><rand> id, retrying on the unlikely
// collision.
func (s *AuthService) generateLeaderID() (string, error) {
	for {
		id := fmt.Sprintf("LD%d%d", time.Now().UnixMilli(), rand.Intn(1000))
		_, err := s.leaders.GetByUserID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// LoginLeader checks the password and issues a user token.
func (s *AuthService) LoginLeader(email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password required", ErrValidation)
	}
	leader, err := s.leaders.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(leader.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(jwt.MapClaims{
		"userid": leader.UserID,
		"role":   "user",
	})
	if err != nil {
		return nil, err
	}
	return &AuthResult{UserID: leader.UserID, Token: token}, nil
}

// RegisterAdmin creates an admin account.
func (s *AuthService) RegisterAdmin(adminID, name string, role int, password string) error {
	if adminID == "" || name == "" || password == "" {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if role != models.RoleSuperAdmin && role != models.RoleModerator {
		return fmt.Errorf("%w: role must be 1 or 2", ErrValidation)
	}
	if _, err := s.admins.GetByAdminID(adminID); err == nil {
		return ErrAdminExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.admins.Create(&models.Admin{
		AdminID:  adminID,
		Name:     name,
		Role:     role,
		Password: string(hash),
	})
}

// LoginAdmin checks the password and issues an admin token.
func (s *AuthService) LoginAdmin(adminID, password string) (*AuthResult, error) {
	if adminID == "" || password == "" {
		return nil, fmt.Errorf("%w: admin id and password required", ErrValidation)
	}
	admin, err := s.admins.GetByAdminID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(jwt.MapClaims{
		"adminId":   admin.AdminID,
		"role":      "admin",
		"adminRole": admin.Role,
	})
	if err != nil {
		return nil, err
	}
	return &AuthResult{UserID: admin.AdminID, Token: token, Role: admin.Role}, nil
}

func (s *AuthService) signToken(claims jwt.MapClaims) (string, error) {
	claims["exp"] = time.Now().Add(s.jwtExpiration).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken verifies a token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	claims := &Claims{}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if userID, ok := mapClaims["userid"].(string); ok {
		claims.UserID = userID
	}
	if adminID, ok := mapClaims["adminId"].(string); ok {
		claims.UserID = adminID
	}
	if adminRole, ok := mapClaims["adminRole"].(float64); ok {
		claims.AdminRole = int(adminRole)
	}
	return claims, nil
}
