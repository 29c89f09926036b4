package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// wrapMongoError converts driver errors into the package sentinels.
func wrapMongoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrAccountNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrAccountAlreadyExists
	}
	return err
}

type mongoAccountRepository struct {
	users *mongo.Collection
	now   func() time.Time
}

// NewMongoAccountRepository returns a MongoDB-backed [AccountRepository].
func NewMongoAccountRepository(m *MongoDB) AccountRepository {
	return &mongoAccountRepository{users: m.col(colUsers), now: time.Now}
}

func (r *mongoAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if _, err := r.users.InsertOne(ctx, account); err != nil {
		return models.Account{}, wrapMongoError(err)
	}
	return account, nil
}

func (r *mongoAccountRepository) FindAccountByID(ctx context.Context, id string) (models.Account, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *mongoAccountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *mongoAccountRepository) FindAccountByVerificationToken(ctx context.Context, token string) (models.Account, error) {
	return r.findOne(ctx, bson.D{{Key: "verification_token", Value: token}})
}

func (r *mongoAccountRepository) FindAccountByResetToken(ctx context.Context, token string) (models.Account, error) {
	return r.findOne(ctx, bson.D{{Key: "password_reset_token", Value: token}})
}

func (r *mongoAccountRepository) UpdateAccount(ctx context.Context, id string, changes models.AccountChanges) (models.Account, error) {
	update, err := buildMongoAccountUpdate(changes, r.now().UTC())
	if err != nil {
		return models.Account{}, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Account
	err = r.users.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&updated)
	if err != nil {
		return models.Account{}, wrapMongoError(err)
	}
	return checkDecodedAccount(updated)
}

// buildMongoAccountUpdate builds a $set over the changed keys plus updated_at.
// Keys are sorted so the document is deterministic.
func buildMongoAccountUpdate(changes models.AccountChanges, now time.Time) (bson.D, error) {
	if len(changes) == 0 {
		return nil, ErrNoAccountChanges
	}

	fields := make([]string, 0, len(changes))
	for field := range changes {
		if !field.IsUpdatable() {
			return nil, fmt.Errorf("%w: %q", ErrFieldNotUpdatable, field)
		}
		fields = append(fields, string(field))
	}
	slices.Sort(fields)

	set := make(bson.D, 0, len(fields)+1)
	for _, field := range fields {
		set = append(set, bson.E{Key: field, Value: changes[models.AccountField(field)]})
	}
	set = append(set, bson.E{Key: "updated_at", Value: now})

	return bson.D{{Key: "$set", Value: set}}, nil
}

func (r *mongoAccountRepository) DeleteAccount(ctx context.Context, id string) error {
	res, err := r.users.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return wrapMongoError(err)
	}
	if res.DeletedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *mongoAccountRepository) findOne(ctx context.Context, filter bson.D) (models.Account, error) {
	var account models.Account
	if err := r.users.FindOne(ctx, filter).Decode(&account); err != nil {
		return models.Account{}, wrapMongoError(err)
	}
	return checkDecodedAccount(account)
}

func checkDecodedAccount(account models.Account) (models.Account, error) {
	if !account.Role.IsValid() {
		return models.Account{}, fmt.Errorf("%w: unknown role %q", ErrScanningRow, account.Role)
	}
	return account, nil
}

type mongoTaskRemover struct {
	tasks *mongo.Collection
}

// NewMongoTaskRemover returns a MongoDB-backed [OwnedDataRemover] for the
// tasks collection.
func NewMongoTaskRemover(m *MongoDB) OwnedDataRemover {
	return &mongoTaskRemover{tasks: m.col(colTasks)}
}

func (r *mongoTaskRemover) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	res, err := r.tasks.DeleteMany(ctx, bson.D{{Key: "owner_id", Value: ownerID}})
	if err != nil {
		return 0, wrapMongoError(err)
	}
	return res.DeletedCount, nil
}
