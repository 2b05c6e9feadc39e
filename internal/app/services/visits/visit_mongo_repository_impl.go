package visits

import (
	"context"
	"log"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VisitMongoRepository struct {
	Collection *mongo.Collection
}

func NewVisitMongoRepository(db *mongo.Client, dbName string) VisitRepository {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionVisits)

	_, err := collection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("VisitCreatedAt"),
	})
	if err != nil {
		log.Printf("Failed to ensure visits created_at index: %v", err)
	}

	return &VisitMongoRepository{Collection: collection}
}

func (r *VisitMongoRepository) CreateVisit(ctx context.Context, visit *models.Visit) (string, error) {
	result, err := r.Collection.InsertOne(ctx, visit)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *VisitMongoRepository) FindByID(ctx context.Context, visitID string) (*models.Visit, error) {
	objectID, err := primitive.ObjectIDFromHex(visitID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var visit models.Visit
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&visit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &visit, nil
}

func (r *VisitMongoRepository) FindAll(ctx context.Context, query *requests.ListVisitsQuery) ([]models.Visit, int, error) {
	filter := bson.M{}
	if query.VisitType != "" {
		filter["visit_type"] = query.VisitType
	}
	if query.PatientName != "" {
		filter["patient_name"] = bson.M{"$regex": query.PatientName, "$options": "i"}
	}
	if query.Date != "" {
		day, err := time.Parse(constvars.DateLayoutClinical, query.Date)
		if err == nil {
			filter["created_at"] = bson.M{
				"$gte": day,
				"$lt":  day.Add(24 * time.Hour),
			}
		}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((query.Page - 1) * query.PageSize)).
		SetLimit(int64(query.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var visitList []models.Visit
	if err := cursor.All(ctx, &visitList); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return visitList, int(total), nil
}

func (r *VisitMongoRepository) UpdateVisit(ctx context.Context, visitID string, visit *models.Visit) error {
	objectID, err := primitive.ObjectIDFromHex(visitID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	visit.UpdatedAt = time.Now().UTC()
	_, err = r.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, visit)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *VisitMongoRepository) DeleteVisit(ctx context.Context, visitID string) error {
	objectID, err := primitive.ObjectIDFromHex(visitID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
