package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/triafrota/tria-backend/internal/domain/entities"
	"github.com/triafrota/tria-backend/internal/domain/errors"
	"github.com/triafrota/tria-backend/internal/domain/ports"
	"github.com/triafrota/tria-backend/internal/domain/repositories"
)

// TokenConfig parametriza a emissão de tokens JWT
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration
}

// RegisterInput representa os dados de registro de um novo usuário
type RegisterInput struct {
	Nome  string
	Email string
	Senha string
	Cargo string
}

// TokenService autentica credenciais e emite tokens JWT assinados
// (HS256) com validade limitada
type TokenService struct {
	store  repositories.CredentialStore
	cfg    TokenConfig
	logger ports.Logger
}

// NewTokenService cria um novo TokenService
func NewTokenService(store repositories.CredentialStore, cfg TokenConfig, logger ports.Logger) *TokenService {
	if cfg.Expiry == 0 {
		cfg.Expiry = 2 * time.Hour
	}
	return &TokenService{store: store, cfg: cfg, logger: logger}
}

// Login valida as credenciais e devolve um token assinado. Usuário
// desconhecido e senha incorreta produzem o mesmo erro genérico para
// não revelar se o e-mail existe.
func (s *TokenService) Login(ctx context.Context, email, senha string) (string, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(senha)); err != nil {
		return "", errors.ErrCredenciaisInvalidas
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", err
	}

	s.logger.Info("login efetuado", "user_id", user.ID)
	return token, nil
}

// Register armazena uma nova credencial com a senha em hash bcrypt.
// Falha com AlreadyExists quando o e-mail já está registrado
// (comparação sem case).
func (s *TokenService) Register(ctx context.Context, input RegisterInput) (*entities.Funcionario, error) {
	existing, err := s.store.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &errors.AlreadyExistsError{Campo: "Email", Valor: input.Email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.Funcionario{
		Nome:  input.Nome,
		Email: input.Email,
		Senha: string(hash),
		Cargo: input.Cargo,
	}

	if err := s.store.Add(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("usuario registrado", "user_id", user.ID)
	return user, nil
}

// generateToken emite o JWT com subject, jti único, id do usuário e
// cargo como claims
func (s *TokenService) generateToken(user *entities.Funcionario) (string, error) {
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"sub":  user.Nome,
		"jti":  uuid.NewString(),
		"uid":  user.ID,
		"role": user.Cargo,
		"iss":  s.cfg.Issuer,
		"aud":  s.cfg.Audience,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.Expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}
