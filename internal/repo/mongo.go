package repo

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

// BSON binary subtypes that carry a 16-byte UUID.
const (
	binarySubtypeUUIDOld byte = 0x03
	binarySubtypeUUID    byte = 0x04
)

// mongoPool is the stored shape of a pool document.
type mongoPool struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	OwnerName       string             `bson:"owner_name"`
	Length          float64            `bson:"length"`
	Width           float64            `bson:"width"`
	Depth           float64            `bson:"depth"`
	Type            string             `bson:"type"`
	Notes           string             `bson:"notes"`
	WaterVolume     float64            `bson:"water_volume"`
	NextMaintenance string             `bson:"next_maintenance,omitempty"`
	Logbook         []mongoLog         `bson:"logbook"`
}

// mongoLog is the stored shape of one logbook entry. ID is written as a
// string; documents written by older clients may hold a binary UUID instead.
type mongoLog struct {
	ID            any     `bson:"id"`
	Date          string  `bson:"date"`
	PHLevel       float64 `bson:"pH_level"`
	ChlorineLevel float64 `bson:"chlorine_level"`
	Notes         string  `bson:"notes"`
}

// MongoStore is the MongoDB implementation of Store and Inspector.
// All pools live in a single collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// OpenMongo connects to uri and verifies the server is reachable.
// The returned client is safe for concurrent use and should be shared for the
// life of the process.
func OpenMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("repo.OpenMongo: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("repo.OpenMongo: ping: %w", err)
	}
	return client, nil
}

// NewMongoStore constructs a MongoStore over database.collection.
func NewMongoStore(client *mongo.Client, database, collection string) *MongoStore {
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}
}

// Create inserts the pool document and returns its ObjectID in hex.
func (s *MongoStore) Create(ctx context.Context, pool domain.Pool) (string, error) {
	doc := toMongoPool(pool)
	doc.ID = primitive.NilObjectID

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("repo.MongoStore.Create: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// ReadAll returns every pool in natural collection order.
func (s *MongoStore) ReadAll(ctx context.Context) ([]domain.Pool, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("repo.MongoStore.ReadAll: %w", err)
	}
	var docs []mongoPool
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("repo.MongoStore.ReadAll: decode: %w", err)
	}

	pools := make([]domain.Pool, 0, len(docs))
	for _, d := range docs {
		pools = append(pools, fromMongoPool(d))
	}
	return pools, nil
}

// ReadOne looks a pool up by its hex ObjectID.
func (s *MongoStore) ReadOne(ctx context.Context, id string) (domain.Pool, bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return domain.Pool{}, false, nil
	}
	doc, found, err := s.findOne(ctx, oid, nil)
	if err != nil {
		return domain.Pool{}, false, fmt.Errorf("repo.MongoStore.ReadOne: %w", err)
	}
	if !found {
		return domain.Pool{}, false, nil
	}
	return fromMongoPool(doc), true, nil
}

// Update applies the patch with $set.
func (s *MongoStore) Update(ctx context.Context, id string, patch domain.PoolPatch) (bool, error) {
	oid, ok := objectID(id)
	if !ok || patch.IsEmpty() {
		return false, nil
	}
	set := bson.D{}
	for _, f := range patch.Fields() {
		set = append(set, bson.E{Key: f.Name, Value: f.Value})
	}

	res, err := s.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return false, fmt.Errorf("repo.MongoStore.Update: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// Delete removes one pool document.
func (s *MongoStore) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, fmt.Errorf("repo.MongoStore.Delete: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// DeleteAll removes every document in the collection.
func (s *MongoStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("repo.MongoStore.DeleteAll: %w", err)
	}
	return res.DeletedCount, nil
}

// AppendLog pushes the entry, guarded in the same filter against an existing
// entry with the same id.
func (s *MongoStore) AppendLog(ctx context.Context, poolID string, log domain.PoolLog) (bool, error) {
	oid, ok := objectID(poolID)
	if !ok {
		return false, nil
	}
	filter := bson.D{
		{Key: "_id", Value: oid},
		{Key: "logbook.id", Value: bson.D{{Key: "$nin", Value: logIDCandidates(log.ID)}}},
	}
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "logbook", Value: toMongoLog(log)}}}}

	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("repo.MongoStore.AppendLog: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// ListLogs returns the logbook array of the pool.
func (s *MongoStore) ListLogs(ctx context.Context, poolID string) ([]domain.PoolLog, error) {
	logs := []domain.PoolLog{}
	oid, ok := objectID(poolID)
	if !ok {
		return logs, nil
	}
	doc, found, err := s.findOne(ctx, oid, bson.D{{Key: "logbook", Value: 1}})
	if err != nil {
		return nil, fmt.Errorf("repo.MongoStore.ListLogs: %w", err)
	}
	if !found {
		return logs, nil
	}
	for _, l := range doc.Logbook {
		logs = append(logs, fromMongoLog(l))
	}
	return logs, nil
}

// GetLog scans the logbook comparing each entry's id in its string form, so
// binary-typed ids written by older clients still match.
func (s *MongoStore) GetLog(ctx context.Context, poolID, logID string) (domain.PoolLog, bool, error) {
	logs, err := s.ListLogs(ctx, poolID)
	if err != nil {
		return domain.PoolLog{}, false, fmt.Errorf("repo.MongoStore.GetLog: %w", err)
	}
	log, ok := findLog(logs, logID)
	return log, ok, nil
}

// UpdateLog replaces the first matching entry through the positional operator.
func (s *MongoStore) UpdateLog(ctx context.Context, poolID, logID string, log domain.PoolLog) (bool, error) {
	oid, ok := objectID(poolID)
	if !ok {
		return false, nil
	}
	filter := bson.D{
		{Key: "_id", Value: oid},
		{Key: "logbook.id", Value: bson.D{{Key: "$in", Value: logIDCandidates(logID)}}},
	}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "logbook.$", Value: toMongoLog(log)}}}}

	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("repo.MongoStore.UpdateLog: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// DeleteLog pulls every entry whose id matches.
func (s *MongoStore) DeleteLog(ctx context.Context, poolID, logID string) (bool, error) {
	oid, ok := objectID(poolID)
	if !ok {
		return false, nil
	}
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "logbook", Value: bson.D{
		{Key: "id", Value: bson.D{{Key: "$in", Value: logIDCandidates(logID)}}},
	}}}}}

	res, err := s.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return false, fmt.Errorf("repo.MongoStore.DeleteLog: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// ClearLogs sets the logbook to an empty array.
func (s *MongoStore) ClearLogs(ctx context.Context, poolID string) (bool, error) {
	oid, ok := objectID(poolID)
	if !ok {
		return false, nil
	}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "logbook", Value: bson.A{}}}}}

	res, err := s.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return false, fmt.Errorf("repo.MongoStore.ClearLogs: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (s *MongoStore) findOne(ctx context.Context, oid primitive.ObjectID, projection any) (mongoPool, bool, error) {
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	var doc mongoPool
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return mongoPool{}, false, nil
	}
	if err != nil {
		return mongoPool{}, false, err
	}
	return doc, true, nil
}

// objectID parses a hex ObjectID; malformed ids are reported as not ok.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// logIDCandidates lists every stored representation a log id may have:
// the canonical string, plus the binary UUID form when it is a UUID.
func logIDCandidates(logID string) bson.A {
	candidates := bson.A{logID}
	if u, err := uuid.Parse(logID); err == nil {
		candidates = append(candidates, primitive.Binary{Subtype: binarySubtypeUUID, Data: u[:]})
	}
	return candidates
}

// logIDString converts a stored log id to its canonical text form.
func logIDString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case primitive.Binary:
		if (id.Subtype == binarySubtypeUUID || id.Subtype == binarySubtypeUUIDOld) && len(id.Data) == 16 {
			if u, err := uuid.FromBytes(id.Data); err == nil {
				return u.String()
			}
		}
		return hex.EncodeToString(id.Data)
	default:
		return fmt.Sprint(id)
	}
}

func toMongoPool(p domain.Pool) mongoPool {
	doc := mongoPool{
		OwnerName:       p.OwnerName,
		Length:          p.Length,
		Width:           p.Width,
		Depth:           p.Depth,
		Type:            p.Type,
		Notes:           p.Notes,
		WaterVolume:     p.WaterVolume,
		NextMaintenance: p.NextMaintenance,
		Logbook:         make([]mongoLog, 0, len(p.Logbook)),
	}
	if oid, ok := objectID(p.ID); ok {
		doc.ID = oid
	}
	for _, l := range p.Logbook {
		doc.Logbook = append(doc.Logbook, toMongoLog(l))
	}
	return doc
}

func fromMongoPool(d mongoPool) domain.Pool {
	p := domain.Pool{
		ID:              d.ID.Hex(),
		OwnerName:       d.OwnerName,
		Length:          d.Length,
		Width:           d.Width,
		Depth:           d.Depth,
		Type:            d.Type,
		Notes:           d.Notes,
		WaterVolume:     d.WaterVolume,
		NextMaintenance: d.NextMaintenance,
		Logbook:         make([]domain.PoolLog, 0, len(d.Logbook)),
	}
	for _, l := range d.Logbook {
		p.Logbook = append(p.Logbook, fromMongoLog(l))
	}
	return p
}

func toMongoLog(l domain.PoolLog) mongoLog {
	return mongoLog{
		ID:            l.ID,
		Date:          l.Date,
		PHLevel:       l.PHLevel,
		ChlorineLevel: l.ChlorineLevel,
		Notes:         l.Notes,
	}
}

func fromMongoLog(l mongoLog) domain.PoolLog {
	return domain.PoolLog{
		ID:            logIDString(l.ID),
		Date:          l.Date,
		PHLevel:       l.PHLevel,
		ChlorineLevel: l.ChlorineLevel,
		Notes:         l.Notes,
	}
}
