package services

import "math/rand/v2"

var travelIdeas = []string{
	"🌺 Find the most colorful gardens",
	"🌊 Discover hidden beaches with crystal clear water",
	"🏰 Explore castles with mysterious legends",
	"🍜 Hunt for the best street food spots",
	"🎨 Find cities with amazing street art",
	"🌿 Search for treehouses in the jungle",
	"🎭 Look for cities with unique festivals",
	"⛰️ Find the most scenic mountain villages",
	"🎪 Discover quirky local markets",
	"🌅 Find the best sunset viewing spots",
	"🎵 Where can I find traditional music venues",
	"🌸 Most beautiful cherry blossom spots",
	"🏺 Ancient ruins with fascinating stories",
	"🚂 Most scenic train journeys",
	"🌴 Remote island paradise getaways",
	"⛷️ Best powder snow destinations",
	"🍷 Hidden vineyard gems",
	"🏮 Most atmospheric night markets",
	"🗿 Mysterious archaeological sites",
	"🏔️ Epic mountain monasteries",
	"📚 Ancient libraries and bookshops",
	"☕ Historic cafes with character",
}

type IdeaServiceInterface interface {
	RandomIdea() string
}

type IdeaService struct {
	ideas []string
	pick  func(n int) int
}

func NewIdeaService() IdeaServiceInterface {
	return &IdeaService{ideas: travelIdeas, pick: rand.IntN}
}

func (s *IdeaService) RandomIdea() string {
	return s.ideas[s.pick(len(s.ideas))]
}
