package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
	"github.com/nagarpalika/complaint-system/internal/core/ports"
)

const (
	collectionComplaints   = "complaints"
	collectionStatusEvents = "status_events"
)

// ComplaintRepository implements ports.ComplaintRepository using MongoDB.
type ComplaintRepository struct {
	col    *mongo.Collection
	events *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{
		col:    db.Collection(collectionComplaints),
		events: db.Collection(collectionStatusEvents),
	}
}

type mongoSubmitter struct {
	Name    string `bson:"name"`
	Phone   string `bson:"phone"`
	Email   string `bson:"email,omitempty"`
	Address string `bson:"address"`
}

type mongoComplaint struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty"`
	ComplaintNumber string              `bson:"complaint_number"`
	Submitter       mongoSubmitter      `bson:"submitter"`
	WardNumber      int                 `bson:"ward_number"`
	Coordinates     *domain.Coordinates `bson:"coordinates,omitempty"`
	ComplaintType   string              `bson:"complaint_type"`
	Title           string              `bson:"title"`
	Description     string              `bson:"description"`
	Priority        string              `bson:"priority"`
	Status          string              `bson:"status"`
	AssignedTo      string              `bson:"assigned_to,omitempty"`
	AssignedPhone   string              `bson:"assigned_phone,omitempty"`
	AssignedEmail   string              `bson:"assigned_email,omitempty"`
	ResolutionNotes string              `bson:"resolution_notes,omitempty"`
	ActionDate      *time.Time          `bson:"action_date,omitempty"`
	IncidentDate    time.Time           `bson:"incident_date"`
	CreatedAt       time.Time           `bson:"created_at"`
}

func toDomain(m *mongoComplaint) *domain.Complaint {
	return &domain.Complaint{
		ID:              m.ID.Hex(),
		ComplaintNumber: m.ComplaintNumber,
		Submitter: domain.Submitter{
			Name:    m.Submitter.Name,
			Phone:   m.Submitter.Phone,
			Email:   m.Submitter.Email,
			Address: m.Submitter.Address,
		},
		WardNumber:      m.WardNumber,
		Coordinates:     m.Coordinates,
		ComplaintType:   domain.ComplaintType(m.ComplaintType),
		Title:           m.Title,
		Description:     m.Description,
		Priority:        domain.Priority(m.Priority),
		Status:          domain.ComplaintStatus(m.Status),
		AssignedTo:      m.AssignedTo,
		AssignedPhone:   m.AssignedPhone,
		AssignedEmail:   m.AssignedEmail,
		ResolutionNotes: m.ResolutionNotes,
		ActionDate:      m.ActionDate,
		IncidentDate:    m.IncidentDate,
		CreatedAt:       m.CreatedAt,
	}
}

func toDoc(c *domain.Complaint) *mongoComplaint {
	return &mongoComplaint{
		ComplaintNumber: c.ComplaintNumber,
		Submitter: mongoSubmitter{
			Name:    c.Submitter.Name,
			Phone:   c.Submitter.Phone,
			Email:   c.Submitter.Email,
			Address: c.Submitter.Address,
		},
		WardNumber:      c.WardNumber,
		Coordinates:     c.Coordinates,
		ComplaintType:   string(c.ComplaintType),
		Title:           c.Title,
		Description:     c.Description,
		Priority:        string(c.Priority),
		Status:          string(c.Status),
		AssignedTo:      c.AssignedTo,
		AssignedPhone:   c.AssignedPhone,
		AssignedEmail:   c.AssignedEmail,
		ResolutionNotes: c.ResolutionNotes,
		ActionDate:      c.ActionDate,
		IncidentDate:    c.IncidentDate,
		CreatedAt:       c.CreatedAt,
	}
}

// Create inserts a new complaint document. The unique index on
// complaint_number turns a generation race into ErrDuplicateComplaintNumber,
// which the service answers with a regenerate-and-retry.
func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toDoc(c))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateComplaintNumber
		}
		return nil, err
	}

	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoComplaint
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}
	return toDomain(&m), nil
}

func (r *ComplaintRepository) FindByNumber(ctx context.Context, complaintNumber string) (*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoComplaint
	if err := r.col.FindOne(ctx, bson.M{"complaint_number": complaintNumber}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}
	return toDomain(&m), nil
}

// List returns one page of complaints matching filter, newest first, and
// the total matching count.
func (r *ComplaintRepository) List(ctx context.Context, f ports.ListComplaintsFilter) ([]*domain.Complaint, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.ComplaintType != "" {
		filter["complaint_type"] = f.ComplaintType
	}
	if f.WardNumber != 0 {
		filter["ward_number"] = f.WardNumber
	}
	if f.Priority != "" {
		filter["priority"] = f.Priority
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64(f.Page-1) * int64(f.Limit)
	if skip < 0 {
		skip = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(f.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []*domain.Complaint
	for cur.Next(ctx) {
		var m mongoComplaint
		if err := cur.Decode(&m); err != nil {
			return nil, 0, err
		}
		out = append(out, toDomain(&m))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// UpdateStatus applies patch to one complaint and returns the updated
// document. Empty-string pointer fields clear the stored value.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id string, patch ports.ComplaintPatch) (*domain.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrComplaintNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"status": string(patch.Status)}
	unset := bson.M{}
	applyField(set, unset, "assigned_to", patch.AssignedTo)
	applyField(set, unset, "assigned_phone", patch.AssignedPhone)
	applyField(set, unset, "assigned_email", patch.AssignedEmail)
	applyField(set, unset, "resolution_notes", patch.ResolutionNotes)
	if patch.ActionDate != nil {
		set["action_date"] = patch.ActionDate.UTC()
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m mongoComplaint
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}
	return toDomain(&m), nil
}

func applyField(set, unset bson.M, field string, value *string) {
	if value == nil {
		return
	}
	if *value == "" {
		unset[field] = ""
		return
	}
	set[field] = *value
}

// Stats recomputes the dashboard rollup with one $group pipeline per
// dimension. Keys with no complaints simply do not appear.
func (r *ComplaintRepository) Stats(ctx context.Context) (*domain.Statistics, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	byStatus, err := r.groupCounts(ctx, "status")
	if err != nil {
		return nil, err
	}
	byType, err := r.groupCounts(ctx, "complaint_type")
	if err != nil {
		return nil, err
	}
	byPriority, err := r.groupCounts(ctx, "priority")
	if err != nil {
		return nil, err
	}

	return &domain.Statistics{
		Total:      total,
		ByStatus:   byStatus,
		ByType:     byType,
		ByPriority: byPriority,
	}, nil
}

func (r *ComplaintRepository) groupCounts(ctx context.Context, field string) ([]domain.StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := []domain.StatusCount{}
	for cur.Next(ctx) {
		var row struct {
			Key   string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts = append(counts, domain.StatusCount{Key: row.Key, Count: row.Count})
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// InsertStatusChange appends an audit document; callers treat failures as
// non-fatal.
func (r *ComplaintRepository) InsertStatusChange(ctx context.Context, change *domain.StatusChange) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"complaint_number": change.ComplaintNumber,
		"from":             string(change.From),
		"to":               string(change.To),
		"changed_by":       change.ChangedBy,
		"changed_at":       change.ChangedAt.UTC(),
	}
	if change.Notes != "" {
		doc["notes"] = change.Notes
	}

	_, err := r.events.InsertOne(ctx, doc)
	return err
}

// EnsureIndexes creates the indexes the core contracts depend on: the
// unique complaint_number index backs the collision-retry path, the rest
// serve the filter engine.
func (r *ComplaintRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "complaint_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "ward_number", Value: 1}}},
		{Keys: bson.D{{Key: "complaint_type", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
