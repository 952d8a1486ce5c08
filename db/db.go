package db

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	TrekMembersCollection        *mongo.Collection
	FlightBookingsCollection     *mongo.Collection
	AccommodationsCollection     *mongo.Collection
	PackingItemsCollection       *mongo.Collection
	PackingProgressCollection    *mongo.Collection
	RouteWaypointsCollection     *mongo.Collection
	EquipmentCollection          *mongo.Collection
	InterviewSubjectsCollection  *mongo.Collection
	InterviewTemplatesCollection *mongo.Collection
	InterviewSchedulesCollection *mongo.Collection
	StoryArcsCollection          *mongo.Collection
	DailyPlansCollection         *mongo.Collection
	ShotsCollection              *mongo.Collection
	EmergencyContactsCollection  *mongo.Collection
	WeatherUpdatesCollection     *mongo.Collection
	UserProgressCollection       *mongo.Collection
	AllowedEmailsCollection      *mongo.Collection
	Client                       *mongo.Client
)

// Initialize MongoDB connection
func init() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	trekdb := Client.Database("trekdb")
	TrekMembersCollection = trekdb.Collection("trekMembers")
	FlightBookingsCollection = trekdb.Collection("flightBookings")
	AccommodationsCollection = trekdb.Collection("accommodations")
	PackingItemsCollection = trekdb.Collection("packingItems")
	PackingProgressCollection = trekdb.Collection("packingProgress")
	RouteWaypointsCollection = trekdb.Collection("routeWaypoints")
	EquipmentCollection = trekdb.Collection("documentaryEquipment")
	InterviewSubjectsCollection = trekdb.Collection("interviewSubjects")
	InterviewTemplatesCollection = trekdb.Collection("interviewTemplates")
	InterviewSchedulesCollection = trekdb.Collection("interviewSchedules")
	StoryArcsCollection = trekdb.Collection("storyArcElements")
	DailyPlansCollection = trekdb.Collection("dailyInterviewPlans")
	ShotsCollection = trekdb.Collection("documentaryShots")
	EmergencyContactsCollection = trekdb.Collection("emergencyContacts")
	WeatherUpdatesCollection = trekdb.Collection("weatherUpdates")
	UserProgressCollection = trekdb.Collection("userProgress")
	AllowedEmailsCollection = trekdb.Collection("allowedEmails")
}
