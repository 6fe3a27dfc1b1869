package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shophub/internal/errors"
	"shophub/internal/model"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	List(ctx context.Context, filter ListFilter) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, id string, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) (*model.Product, error)
}

type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository creates a product repository over the given database.
func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepository{coll: db.Collection("products")}
}

// List returns every product matching the filter, newest first.
func (r *productRepository) List(ctx context.Context, filter ListFilter) ([]model.Product, error) {
	query, opts := BuildListQuery(filter)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID finds a product by its hex object id.
func (r *productRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var product model.Product
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create inserts a new product and stamps its timestamps.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

// Update replaces the stored fields with the already-merged, validated
// record and returns the updated document. Last write wins; there is no
// version check.
func (r *productRepository) Update(ctx context.Context, id string, product *model.Product) (*model.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	product.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"title":            product.Title,
		"shortDescription": product.ShortDescription,
		"fullDescription":  product.FullDescription,
		"price":            product.Price,
		"category":         product.Category,
		"stock":            product.Stock,
		"imageUrl":         product.ImageURL,
		"createdBy":        product.CreatedBy,
		"updatedAt":        product.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Product
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete physically removes a product and returns the deleted document.
func (r *productRepository) Delete(ctx context.Context, id string) (*model.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var deleted model.Product
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, errors.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.ErrInvalidID
	}
	return oid, nil
}
