package preferences

// Language is an interface language tag.
type Language string

// Known languages.
const (
	LangEnglish Language = "en"
	LangSpanish Language = "es"
	LangFrench  Language = "fr"
	LangGerman  Language = "de"
)

// DefaultLanguage is used until a saved language exists.
const DefaultLanguage = LangEnglish

// Valid reports whether the language has a translation table.
func (l Language) Valid() bool {
	_, ok := translations[l]
	return ok
}

// Translate looks up key in lang's table. A missing key (or unknown language)
// returns the key itself; callers rely on this for ad hoc labels.
func Translate(lang Language, key string) string {
	if table, ok := translations[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	return key
}

var translations = map[Language]map[string]string{
	LangEnglish: {
		"dashboard":         "Dashboard",
		"pipeline":          "Pipeline",
		"contacts":          "Contacts",
		"deals":             "Deals",
		"tasks":             "Tasks",
		"settings":          "Settings",
		"profile":           "Profile",
		"users":             "User Management",
		"language":          "Language",
		"theme":             "Theme",
		"notifications":     "Notifications",
		"general":           "General",
		"security":          "Security",
		"appearance":        "Appearance",
		"save":              "Save",
		"cancel":            "Cancel",
		"edit":              "Edit",
		"delete":            "Delete",
		"add":               "Add",
		"search":            "Search",
		"filter":            "Filter",
		"name":              "Name",
		"email":             "Email",
		"phone":             "Phone",
		"company":           "Company",
		"position":          "Position",
		"department":        "Department",
		"role":              "Role",
		"status":            "Status",
		"active":            "Active",
		"inactive":          "Inactive",
		"admin":             "Admin",
		"manager":           "Manager",
		"sales":             "Sales",
		"user":              "User",
		"light":             "Light",
		"dark":              "Dark",
		"blue":              "Blue",
		"green":             "Green",
		"purple":            "Purple",
		"english":           "English",
		"spanish":           "Spanish",
		"french":            "French",
		"german":            "German",
		"timezone":          "Timezone",
		"emailNotifications": "Email Notifications",
		"pushNotifications":  "Push Notifications",
		"dealNotifications":  "Deal Notifications",
		"taskNotifications":  "Task Notifications",
		"profileUpdated":     "Profile updated successfully",
		"userAdded":          "User added successfully",
		"userUpdated":        "User updated successfully",
		"userDeleted":        "User deleted successfully",
	},
	LangSpanish: {
		"dashboard":         "Panel",
		"pipeline":          "Pipeline",
		"contacts":          "Contactos",
		"deals":             "Ofertas",
		"tasks":             "Tareas",
		"settings":          "Configuración",
		"profile":           "Perfil",
		"users":             "Gestión de Usuarios",
		"language":          "Idioma",
		"theme":             "Tema",
		"notifications":     "Notificaciones",
		"general":           "General",
		"security":          "Seguridad",
		"appearance":        "Apariencia",
		"save":              "Guardar",
		"cancel":            "Cancelar",
		"edit":              "Editar",
		"delete":            "Eliminar",
		"add":               "Añadir",
		"search":            "Buscar",
		"filter":            "Filtrar",
		"name":              "Nombre",
		"email":             "Email",
		"phone":             "Teléfono",
		"company":           "Empresa",
		"position":          "Posición",
		"department":        "Departamento",
		"role":              "Rol",
		"status":            "Estado",
		"active":            "Activo",
		"inactive":          "Inactivo",
		"admin":             "Administrador",
		"manager":           "Gerente",
		"sales":             "Ventas",
		"user":              "Usuario",
		"light":             "Claro",
		"dark":              "Oscuro",
		"blue":              "Azul",
		"green":             "Verde",
		"purple":            "Morado",
		"english":           "Inglés",
		"spanish":           "Español",
		"french":            "Francés",
		"german":            "Alemán",
		"timezone":          "Zona Horaria",
		"emailNotifications": "Notificaciones por Email",
		"pushNotifications":  "Notificaciones Push",
		"dealNotifications":  "Notificaciones de Ofertas",
		"taskNotifications":  "Notificaciones de Tareas",
		"profileUpdated":     "Perfil actualizado exitosamente",
		"userAdded":          "Usuario añadido exitosamente",
		"userUpdated":        "Usuario actualizado exitosamente",
		"userDeleted":        "Usuario eliminado exitosamente",
	},
	LangFrench: {
		"dashboard":         "Tableau de Bord",
		"pipeline":          "Pipeline",
		"contacts":          "Contacts",
		"deals":             "Affaires",
		"tasks":             "Tâches",
		"settings":          "Paramètres",
		"profile":           "Profil",
		"users":             "Gestion des Utilisateurs",
		"language":          "Langue",
		"theme":             "Thème",
		"notifications":     "Notifications",
		"general":           "Général",
		"security":          "Sécurité",
		"appearance":        "Apparence",
		"save":              "Enregistrer",
		"cancel":            "Annuler",
		"edit":              "Modifier",
		"delete":            "Supprimer",
		"add":               "Ajouter",
		"search":            "Rechercher",
		"filter":            "Filtrer",
		"name":              "Nom",
		"email":             "Email",
		"phone":             "Téléphone",
		"company":           "Entreprise",
		"position":          "Position",
		"department":        "Département",
		"role":              "Rôle",
		"status":            "Statut",
		"active":            "Actif",
		"inactive":          "Inactif",
		"admin":             "Administrateur",
		"manager":           "Gestionnaire",
		"sales":             "Ventes",
		"user":              "Utilisateur",
		"light":             "Clair",
		"dark":              "Sombre",
		"blue":              "Bleu",
		"green":             "Vert",
		"purple":            "Violet",
		"english":           "Anglais",
		"spanish":           "Espagnol",
		"french":            "Français",
		"german":            "Allemand",
		"timezone":          "Fuseau Horaire",
		"emailNotifications": "Notifications Email",
		"pushNotifications":  "Notifications Push",
		"dealNotifications":  "Notifications d'Affaires",
		"taskNotifications":  "Notifications de Tâches",
		"profileUpdated":     "Profil mis à jour avec succès",
		"userAdded":          "Utilisateur ajouté avec succès",
		"userUpdated":        "Utilisateur mis à jour avec succès",
		"userDeleted":        "Utilisateur supprimé avec succès",
	},
	LangGerman: {
		"dashboard":         "Dashboard",
		"pipeline":          "Pipeline",
		"contacts":          "Kontakte",
		"deals":             "Geschäfte",
		"tasks":             "Aufgaben",
		"settings":          "Einstellungen",
		"profile":           "Profil",
		"users":             "Benutzerverwaltung",
		"language":          "Sprache",
		"theme":             "Design",
		"notifications":     "Benachrichtigungen",
		"general":           "Allgemein",
		"security":          "Sicherheit",
		"appearance":        "Erscheinungsbild",
		"save":              "Speichern",
		"cancel":            "Abbrechen",
		"edit":              "Bearbeiten",
		"delete":            "Löschen",
		"add":               "Hinzufügen",
		"search":            "Suchen",
		"filter":            "Filtern",
		"name":              "Name",
		"email":             "E-Mail",
		"phone":             "Telefon",
		"company":           "Unternehmen",
		"position":          "Position",
		"department":        "Abteilung",
		"role":              "Rolle",
		"status":            "Status",
		"active":            "Aktiv",
		"inactive":          "Inaktiv",
		"admin":             "Administrator",
		"manager":           "Manager",
		"sales":             "Vertrieb",
		"user":              "Benutzer",
		"light":             "Hell",
		"dark":              "Dunkel",
		"blue":              "Blau",
		"green":             "Grün",
		"purple":            "Lila",
		"english":           "Englisch",
		"spanish":           "Spanisch",
		"french":            "Französisch",
		"german":            "Deutsch",
		"timezone":          "Zeitzone",
		"emailNotifications": "E-Mail-Benachrichtigungen",
		"pushNotifications":  "Push-Benachrichtigungen",
		"dealNotifications":  "Geschäfts-Benachrichtigungen",
		"taskNotifications":  "Aufgaben-Benachrichtigungen",
		"profileUpdated":     "Profil erfolgreich aktualisiert",
		"userAdded":          "Benutzer erfolgreich hinzugefügt",
		"userUpdated":        "Benutzer erfolgreich aktualisiert",
		"userDeleted":        "Benutzer erfolgreich gelöscht",
	},
}
