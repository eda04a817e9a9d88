// Package domain contains the core business entities of the advisor:
// entity profiles, transactions, generated recommendations, and the usage
// accounting attached to generative calls. Domain types validate themselves
// and carry no persistence or transport concerns.
package domain
