package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCollection stores one record kind in a MongoDB collection.
//
// Records carry their id outside of the bson encoding (`bson:"-"`); the
// collection maps it to and from the ObjectID `_id` field.
type MongoCollection[T Model[T]] struct {
	desc Descriptor[T]
	coll *mongo.Collection
}

func NewMongoCollection[T Model[T]](coll *mongo.Collection, desc Descriptor[T]) *MongoCollection[T] {
	return &MongoCollection[T]{desc: desc, coll: coll}
}

func (m *MongoCollection[T]) objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &CastError{Kind: m.desc.Kind, Type: "ObjectId", Value: id, Err: err}
	}
	return oid, nil
}

func (m *MongoCollection[T]) decode(raw bson.Raw) (T, error) {
	rec := m.desc.New()
	if err := bson.Unmarshal(raw, rec); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %s: %w", m.desc.Kind, err)
	}
	if v, err := raw.LookupErr("_id"); err == nil {
		if oid, ok := v.ObjectIDOK(); ok {
			rec.SetID(oid.Hex())
		} else if s, ok := v.StringValueOK(); ok {
			rec.SetID(s)
		}
	}
	return rec, nil
}

// encode renders rec without its id.
func (m *MongoCollection[T]) encode(rec T) (bson.D, error) {
	raw, err := bson.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", m.desc.Kind, err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encode %s: %w", m.desc.Kind, err)
	}
	return doc, nil
}

func (m *MongoCollection[T]) Find(ctx context.Context) ([]T, error) {
	cur, err := m.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	for cur.Next(ctx) {
		rec, err := m.decode(cur.Current)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoCollection[T]) FindByID(ctx context.Context, id string) (T, bool, error) {
	var zero T
	oid, err := m.objectID(id)
	if err != nil {
		return zero, false, err
	}

	raw, err := m.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	rec, err := m.decode(raw)
	if err != nil {
		return zero, false, err
	}
	return rec, true, nil
}

func (m *MongoCollection[T]) Save(ctx context.Context, rec T) error {
	stamp(rec, now())
	if err := Validate(m.desc, rec); err != nil {
		return err
	}
	doc, err := m.encode(rec)
	if err != nil {
		return err
	}

	if rec.GetID() == "" {
		oid := primitive.NewObjectID()
		if _, err := m.coll.InsertOne(ctx, append(bson.D{{Key: "_id", Value: oid}}, doc...)); err != nil {
			return err
		}
		rec.SetID(oid.Hex())
		return nil
	}

	oid, err := m.objectID(rec.GetID())
	if err != nil {
		return err
	}
	res, err := m.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return documentNotFound(m.desc.Kind, rec.GetID())
	}
	return nil
}

func (m *MongoCollection[T]) FindByIDAndDelete(ctx context.Context, id string) (T, bool, error) {
	var zero T
	oid, err := m.objectID(id)
	if err != nil {
		return zero, false, err
	}

	raw, err := m.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	rec, err := m.decode(raw)
	if err != nil {
		return zero, false, err
	}
	return rec, true, nil
}
