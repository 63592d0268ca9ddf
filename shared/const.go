package shared

const (
	UserID = "user_id"

	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"

	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"

	QuestTypeSoundMatch    = "sound_match"
	QuestTypeWordBuilder   = "word_builder"
	QuestTypeRhymeTime     = "rhyme_time"
	QuestTypeMemoryMatch   = "memory_match"
	QuestTypeSyllableCount = "syllable_count"
	QuestTypeSpelling      = "spelling"
	QuestTypeVocabulary    = "vocabulary"
)
