package utils

import "go.mongodb.org/mongo-driver/mongo"

// MongoClient is the shared MongoDB client, assigned at startup.
var MongoClient *mongo.Client
