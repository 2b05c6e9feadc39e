package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) AppointmentRepository {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionAppointments)

	// Schedule views filter and sort on the mirrored timestamp.
	_, err := collection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "scheduled_on", Value: 1}},
		Options: options.Index().SetName("AppointmentScheduledOn"),
	})
	if err != nil {
		log.Printf("Failed to ensure appointments scheduled_on index: %v", err)
	}

	return &AppointmentMongoRepository{Collection: collection}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context, query *requests.ListAppointmentsQuery) ([]models.Appointment, int, error) {
	filter := bson.M{}
	if query.Name != "" {
		filter["$or"] = []bson.M{
			{"first_name": bson.M{"$regex": query.Name, "$options": "i"}},
			{"last_name": bson.M{"$regex": query.Name, "$options": "i"}},
		}
	}
	if query.Doctor != "" {
		filter["doctor"] = bson.M{"$regex": query.Doctor, "$options": "i"}
	}
	if query.Type != "" {
		filter["appointment_type"] = query.Type
	}
	if query.Urgency != "" {
		filter["urgency"] = query.Urgency
	}

	scheduled := bson.M{}
	if query.FromDate != "" {
		if from, err := time.Parse(constvars.DateLayoutClinical, query.FromDate); err == nil {
			scheduled["$gte"] = from
		}
	}
	if query.ToDate != "" {
		if to, err := time.Parse(constvars.DateLayoutClinical, query.ToDate); err == nil {
			// Inclusive upper bound: the whole to_date day is in range.
			scheduled["$lt"] = to.Add(24 * time.Hour)
		}
	}
	if len(scheduled) > 0 {
		filter["scheduled_on"] = scheduled
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "scheduled_on", Value: 1}, {Key: "time", Value: 1}}).
		SetSkip(int64((query.Page - 1) * query.PageSize)).
		SetLimit(int64(query.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointmentList []models.Appointment
	if err := cursor.All(ctx, &appointmentList); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointmentList, int(total), nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointmentID string, appointment *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	appointment.UpdatedAt = time.Now().UTC()
	_, err = r.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, appointment)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) DeleteAppointment(ctx context.Context, appointmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
