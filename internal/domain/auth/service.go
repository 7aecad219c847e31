package auth

import "time"

const sessionTTL = 8 * time.Hour

// Service gates the admin area behind the shared admin password. The
// password is hashed once at startup; a successful unlock issues a
// short-lived token carrying the area claim.
type Service struct {
	secret       string
	passwordHash string
}

func NewService(secret, adminPassword string) (*Service, error) {
	hash, err := HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}
	return &Service{secret: secret, passwordHash: hash}, nil
}

func (s *Service) Unlock(password string) (string, error) {
	if err := CheckPassword(s.passwordHash, password); err != nil {
		return "", ErrBadPassword
	}
	return GenerateToken(s.secret, Claims{Area: AreaAdmin}, sessionTTL)
}

func (s *Service) Parse(token string) (Session, error) {
	claims, err := ParseToken(s.secret, token)
	if err != nil {
		return Session{}, err
	}
	return Session{Area: claims.Area}, nil
}
