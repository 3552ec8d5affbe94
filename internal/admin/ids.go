package admin

// nextID alloue l'identité d'une nouvelle entité : max observé + 1, ou 1 si
// la lecture du max a échoué (table vide ou store injoignable).
//
// Monotone sous écrivain unique séquentiel uniquement : deux sessions admin
// simultanées peuvent lire le même max et calculer le même id. Comportement
// repris de l'original, épinglé par un test.
func nextID(max int, err error) int {
	if err != nil {
		return 1
	}
	return max + 1
}
