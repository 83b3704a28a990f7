package constant

// ClientID identifies requests made to the Twitch web APIs.
const ClientID = "jzkbprff40iqj646a697cyrvl0zt2m6"

// StreamInfMarker prefixes every variant directive of a master playlist.
const StreamInfMarker = "#EXT-X-STREAM-INF:"

// Default endpoint roots. Paths are appended by the twitch package.
const (
	APIBaseURL   = "https://api.twitch.tv"
	UsherBaseURL = "https://usher.ttvnw.net"
	GraphQLURL   = "https://gql.twitch.tv/gql"
)

// Persisted GraphQL query hashes.
const (
	ChannelRootQueryHash = "ce18f2832d12cabcfee42f0c72001dfa1a5ed4a84931ead7b526245994810284"
	VideoTowerQueryHash  = "a937f1d22e269e39a03b509f65a7490f9fc247d7f83d6ac1421523e3b68042cb"
	ChannelRootOperation = "ChannelRoot_Channel"
	VideoTowerOperation  = "FilterableVideoTower_Videos"
)
