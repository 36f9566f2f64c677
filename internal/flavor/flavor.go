package flavor

import (
	"fmt"
	"math/rand"
)

// Пакет flavor генерирует текст для игрового лога: наблюдения за болезнями,
// вредителями и находками ботаников. Движку этот текст безразличен,
// но именно его читают игроки и LLM-агенты, так что вариативность важна.
//
// Все генераторы детерминированы по rng: один сид - одна летопись деревни.

// --- БОЛЕЗНИ ---

var diseaseNames = map[string]string{
	"blight": "гниль листвы",
	"rot":    "корневая гниль",
	"mildew": "мучнистая роса",
}

var infectionLines = []string{
	"На листьях %s проступают первые пятна: %s.",
	"%s выглядит нездорово - похоже, это %s.",
	"Болезнь добралась до %s. Диагноз: %s.",
	"У %s поникли листья. В деревне шепчутся про %s.",
	"%s захворал. Опытный глаз узнает %s.",
}

var spreadLines = []string{
	"Зараза перекинулась с %s на %s.",
	"%s заразил соседа: %s тоже болен.",
	"Ветер разнес споры: после %s болезнь нашла %s.",
}

var worseningLines = []string{
	"%s увядает на глазах.",
	"Болезнь пожирает %s. Осталось недолго.",
	"%s почти не держится: стебель почернел.",
}

var recoveryLines = []string{
	"%s идет на поправку! Пятна светлеют.",
	"Болезнь отступила от %s.",
	"%s выстоял. Листья снова наливаются зеленью.",
}

func InfectionLine(rng *rand.Rand, plantName, disease string) string {
	return fmt.Sprintf(pick(rng, infectionLines), plantName, diseaseName(disease))
}

func SpreadLine(rng *rand.Rand, fromPlant, toPlant string) string {
	return fmt.Sprintf(pick(rng, spreadLines), fromPlant, toPlant)
}

func WorseningLine(rng *rand.Rand, plantName string) string {
	return fmt.Sprintf(pick(rng, worseningLines), plantName)
}

func RecoveryLine(rng *rand.Rand, plantName string) string {
	return fmt.Sprintf(pick(rng, recoveryLines), plantName)
}

// --- ВРЕДИТЕЛИ ---

var pestSpecies = []string{
	"листоеды", "корнегрызы", "тля", "пепельные жуки", "ночные слизни",
}

var pestArrivalLines = []string{
	"На %s замечены %s.",
	"%s облюбовали %s. Плохой знак.",
	"Вокруг %s вьются %s.",
}

var pestDamageLines = []string{
	"%s объеден почти до стебля.",
	"Вредители оставили на %s одни дырки.",
	"%s страдает: листья изгрызены.",
}

var pestSpilloverLines = []string{
	"Вредители с %s перебрались на %s.",
	"С %s насекомые хлынули на соседний %s.",
}

func RandomPestSpecies(rng *rand.Rand) string {
	return pick(rng, pestSpecies)
}

func PestArrivalLine(rng *rand.Rand, plantName, pest string) string {
	return fmt.Sprintf(pick(rng, pestArrivalLines), plantName, pest)
}

func PestDamageLine(rng *rand.Rand, plantName string) string {
	return fmt.Sprintf(pick(rng, pestDamageLines), plantName)
}

func PestSpilloverLine(rng *rand.Rand, fromPlant, toPlant string) string {
	return fmt.Sprintf(pick(rng, pestSpilloverLines), fromPlant, toPlant)
}

// --- БОТАНИКА ---

var discoveryLines = []string{
	"%s долго разглядывает %s и вдруг замирает: открытие!",
	"%s зарисовывает %s в полевой дневник. Новый вид изучен!",
	"Эврика! %s разобрался в устройстве %s.",
	"%s осторожно срезает образец %s. Коллекция пополнилась.",
	"После долгих наблюдений %s описывает %s. Наука торжествует.",
}

var studyFailLines = []string{
	"%s вертит в руках листок %s, но так ничего и не понимает.",
	"%s изучает %s без особого успеха.",
	"%s хмурится: %s не раскрывает своих секретов.",
	"Записи %s о %s обрываются на полуслове.",
}

var alreadyKnownLines = []string{
	"%s уже знает о %s все, что можно узнать.",
	"%s лишь скользит взглядом по %s - старый знакомый.",
}

func DiscoveryLine(rng *rand.Rand, villagerName, plantName string) string {
	return fmt.Sprintf(pick(rng, discoveryLines), villagerName, plantName)
}

func StudyFailLine(rng *rand.Rand, villagerName, plantName string) string {
	return fmt.Sprintf(pick(rng, studyFailLines), villagerName, plantName)
}

func AlreadyKnownLine(rng *rand.Rand, villagerName, plantName string) string {
	return fmt.Sprintf(pick(rng, alreadyKnownLines), villagerName, plantName)
}

// --- РОСТ ---

var growthLines = map[string][]string{
	"sprout": {
		"%s проклюнулся из земли.",
		"Из грядки показался росток: %s ожил.",
	},
	"mature": {
		"%s вытянулся и окреп.",
		"%s вошел в полную силу.",
	},
	"flowering": {
		"%s зацвел! Над грядкой стоит сладкий запах.",
		"На %s раскрылись первые бутоны.",
	},
	"withered": {
		"%s увял. Земля заберет свое.",
		"От %s остался лишь сухой стебель.",
	},
}

func GrowthLine(rng *rand.Rand, plantName, newStage string) string {
	lines, ok := growthLines[newStage]
	if !ok {
		return fmt.Sprintf("%s перешел в стадию %s.", plantName, newStage)
	}
	return fmt.Sprintf(pick(rng, lines), plantName)
}

func diseaseName(key string) string {
	if name, ok := diseaseNames[key]; ok {
		return name
	}
	return key
}

func pick(rng *rand.Rand, lines []string) string {
	return lines[rng.Intn(len(lines))]
}
