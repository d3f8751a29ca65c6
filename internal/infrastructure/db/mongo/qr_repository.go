package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
)

const collectionLocationQRs = "location_qrs"

// QRRepository persists location QR bindings for audit and reuse.
type QRRepository struct {
	col *mongo.Collection
}

func NewQRRepository(db *mongo.Database) *QRRepository {
	return &QRRepository{col: db.Collection(collectionLocationQRs)}
}

type mongoLocationQR struct {
	ID          string              `bson:"_id"`
	Location    string              `bson:"location"`
	WardNumber  int                 `bson:"ward_number"`
	Coordinates *domain.Coordinates `bson:"coordinates,omitempty"`
	Payload     string              `bson:"payload"`
	CreatedBy   string              `bson:"created_by,omitempty"`
	CreatedAt   time.Time           `bson:"created_at"`
}

func (r *QRRepository) Save(ctx context.Context, qr *domain.LocationQR) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoLocationQR{
		ID:          qr.ID,
		Location:    qr.Location,
		WardNumber:  qr.WardNumber,
		Coordinates: qr.Coordinates,
		Payload:     qr.Payload,
		CreatedBy:   qr.CreatedBy,
		CreatedAt:   qr.CreatedAt.UTC(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		// Concurrent generation of the same binding; the stored one wins.
		return nil
	}
	return err
}

func (r *QRRepository) FindByLocationWard(ctx context.Context, location string, wardNumber int) (*domain.LocationQR, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoLocationQR
	filter := bson.M{"location": location, "ward_number": wardNumber}
	if err := r.col.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQRNotFound
		}
		return nil, err
	}

	return &domain.LocationQR{
		ID:          m.ID,
		Location:    m.Location,
		WardNumber:  m.WardNumber,
		Coordinates: m.Coordinates,
		Payload:     m.Payload,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}, nil
}

// EnsureIndexes makes a location+ward pair map to a single binding.
func (r *QRRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "location", Value: 1}, {Key: "ward_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
