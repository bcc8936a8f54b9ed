/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design patterns
  - Macro-based key expansion (e.g., "USER#{ID}")
  - Automatic EntityType injection for polymorphic storage
  - Partition queries

Key templates are looked up in the injector, so they must be registered
before the store is used:

	r := injector.Instance()
	datastore.RegisterIndexMap[User](r, map[string]string{
	    "PK":     "USER#{ID}",        // Becomes "USER#123"
	    "SK":     "USER#{ID}",
	    "GSI1PK": "EMAIL#{Email}",    // Filled from the entity on Put
	})

	client, err := ddb.NewClient(ctx, ddb.ClientOptions{Region: "us-east-1"})
	users := ddb.NewDynamodbDataStore[User](client, "app-table", r)
	datastore.Register[User](r, users)
*/
package ddb
