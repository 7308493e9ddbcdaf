package domain

// Типы сущностей
const (
	EntityTypeMonster = "MONSTER"
	EntityTypeNPC     = "NPC"
	EntityTypeItem    = "ITEM"
)

// Категории предметов
const (
	ItemCategoryWeapon = "weapon"
	ItemCategoryPotion = "potion"
	ItemCategoryFood   = "food"
	ItemCategoryMisc   = "misc"
)

// Параметры восприятия
const (
	VisionRadius = 8
)

// Стоимость действий в минутах игрового времени
const (
	TimeCostMove = 1
	TimeCostWait = 10
)

// Фазы суток (см. World.GetTimeOfDay)
const (
	TimeOfDayDawn  = "DAWN"
	TimeOfDayDay   = "DAY"
	TimeOfDayDusk  = "DUSK"
	TimeOfDayNight = "NIGHT"
)
