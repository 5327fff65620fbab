package model

// Client is a rental customer.  Clients are reference data from the
// booking core's perspective: the transaction only ever checks that the
// NIF exists before reserving a vehicle on the client's behalf.
//
// Fields:
//  NIF  – unique national identity string, primary key.
//  Name – display name.
type Client struct {
	NIF  string `json:"nif"`  // clients.nif
	Name string `json:"name"` // clients.name
}
