package repositories

import (
	"context"
	"fmt"
	"time"

	"farmlink_back_end/internal/models"
)

type ScyllaUserRepository struct {
	session SessionProvider
}

func NewScyllaUserRepository(session SessionProvider) *ScyllaUserRepository {
	return &ScyllaUserRepository{session: session}
}

func (r *ScyllaUserRepository) Create(ctx context.Context, user *models.User) error {
	session, err := r.session()
	if err != nil {
		return fmt.Errorf("erreur connexion base de données: %v", err)
	}

	err = session.Query(
		`INSERT INTO profiles (user_id, username, email, phone, address, role, profile_image, password, provider, provider_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.Email, user.Phone, user.Address, string(user.Role),
		user.ProfileImage, user.Password, user.Provider, user.ProviderID, time.Now(),
	).WithContext(ctx).Exec()
	if err != nil {
		return err
	}

	// Double écriture : table de lookup pour le login par email
	return session.Query(
		`INSERT INTO profiles_by_email (email, provider, user_id) VALUES (?, ?, ?)`,
		user.Email, user.Provider, user.ID,
	).WithContext(ctx).Exec()
}

func (r *ScyllaUserRepository) Update(ctx context.Context, user *models.User) error {
	session, err := r.session()
	if err != nil {
		return fmt.Errorf("erreur connexion base de données: %v", err)
	}

	return session.Query(
		`UPDATE profiles SET username = ?, phone = ?, address = ?, profile_image = ?
		 WHERE user_id = ?`,
		user.Username, user.Phone, user.Address, user.ProfileImage, user.ID,
	).WithContext(ctx).Exec()
}

func (r *ScyllaUserRepository) ByID(ctx context.Context, userID string) (*models.User, error) {
	session, err := r.session()
	if err != nil {
		return nil, fmt.Errorf("erreur connexion base de données: %v", err)
	}

	var user models.User
	var role string
	err = session.Query(
		`SELECT user_id, username, email, phone, address, role, profile_image, password, provider, provider_id
		 FROM profiles WHERE user_id = ?`, userID,
	).WithContext(ctx).Scan(
		&user.ID, &user.Username, &user.Email, &user.Phone, &user.Address,
		&role, &user.ProfileImage, &user.Password, &user.Provider, &user.ProviderID)
	if err != nil {
		return nil, err
	}

	user.Role = models.Role(role)
	return &user, nil
}

func (r *ScyllaUserRepository) ByEmail(ctx context.Context, email, provider string) (*models.User, error) {
	session, err := r.session()
	if err != nil {
		return nil, fmt.Errorf("erreur connexion base de données: %v", err)
	}

	var userID string
	err = session.Query(`SELECT user_id FROM profiles_by_email WHERE email = ? AND provider = ?`,
		email, provider).WithContext(ctx).Scan(&userID)
	if err != nil {
		return nil, err
	}

	return r.ByID(ctx, userID)
}

func (r *ScyllaUserRepository) UserIDs(ctx context.Context) ([]string, error) {
	session, err := r.session()
	if err != nil {
		return nil, fmt.Errorf("erreur connexion base de données: %v", err)
	}

	iter := session.Query(`SELECT user_id FROM profiles`).WithContext(ctx).Iter()

	ids := []string{}
	var id string
	for iter.Scan(&id) {
		ids = append(ids, id)
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return ids, nil
}
