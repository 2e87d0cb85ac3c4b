// Package catalog holds the static marketing content: the service catalog
// and the team listing. Nothing here touches persistence.
package catalog

import (
	"github.com/agoracomunicaciones/agorabackend/models"
	"github.com/agoracomunicaciones/agorabackend/utils"
	"github.com/google/uuid"
)

type serviceEntry struct {
	name        string // slugged once into the service id
	title       string
	description string
	icon        string
	features    []string
}

var serviceEntries = []serviceEntry{
	{
		name:        "Branding",
		title:       "Branding & Identidad Corporativa",
		description: "Desarrollo de identidad visual completa, logos, paletas de colores y guías de marca.",
		icon:        "🎨",
		features:    []string{"Diseño de logo", "Manual de marca", "Paleta de colores", "Tipografías corporativas"},
	},
	{
		name:        "Digital Marketing",
		title:       "Marketing Digital",
		description: "Estrategias integrales de marketing digital para maximizar tu presencia online.",
		icon:        "📱",
		features:    []string{"Redes sociales", "SEO/SEM", "Email marketing", "Publicidad digital"},
	},
	{
		name:        "Content Creation",
		title:       "Creación de Contenido",
		description: "Contenido creativo y estratégico para todas tus plataformas digitales.",
		icon:        "✍️",
		features:    []string{"Copywriting", "Fotografía", "Videos", "Infografías"},
	},
	{
		name:        "Web Design",
		title:       "Diseño Web",
		description: "Sitios web modernos, responsivos y optimizados para conversión.",
		icon:        "💻",
		features:    []string{"Diseño responsivo", "UI/UX", "E-commerce", "Optimización"},
	},
	{
		name:        "Print Design",
		title:       "Diseño Gráfico",
		description: "Materiales impresos de alta calidad para fortalecer tu imagen de marca.",
		icon:        "🖨️",
		features:    []string{"Brochures", "Catálogos", "Packaging", "Señalética"},
	},
	{
		name:        "Consulting",
		title:       "Consultoría Estratégica",
		description: "Asesoramiento especializado para optimizar tus estrategias de comunicación.",
		icon:        "💡",
		features:    []string{"Análisis de mercado", "Estrategia de marca", "Plan de comunicación", "Medición de resultados"},
	},
}

// services is built once: ids are slugs and stay stable across calls.
var services = buildServices()

func buildServices() []models.Service {
	out := make([]models.Service, 0, len(serviceEntries))
	for _, e := range serviceEntries {
		out = append(out, models.Service{
			ID:          utils.GenerateSlug(e.name),
			Title:       e.title,
			Description: e.description,
			Icon:        e.icon,
			Features:    e.features,
		})
	}
	return out
}

// Services returns the fixed service catalog, in display order.
func Services() []models.Service {
	return services
}

type teamEntry struct {
	name  string
	role  string
	bio   string
	image string
	email string
}

var teamEntries = []teamEntry{
	{
		name:  "María González",
		role:  "Directora Creativa",
		bio:   "Más de 10 años de experiencia en publicidad y branding. Especialista en estrategias de marca.",
		image: "https://images.unsplash.com/photo-1573496130141-209d200cebd8",
		email: "maria@agoracomunicaciones.com",
	},
	{
		name:  "Carlos Rodríguez",
		role:  "Director de Marketing Digital",
		bio:   "Experto en marketing digital y SEO. Apasionado por las nuevas tecnologías y tendencias digitales.",
		image: "https://images.unsplash.com/photo-1600880292089-90a7e086ee0c",
		email: "carlos@agoracomunicaciones.com",
	},
	{
		name:  "Ana Martínez",
		role:  "Diseñadora Gráfica Senior",
		bio:   "Especialista en diseño gráfico y branding con enfoque en sostenibilidad y diseño responsable.",
		image: "https://images.pexels.com/photos/3810753/pexels-photo-3810753.jpeg",
		email: "ana@agoracomunicaciones.com",
	},
	{
		name:  "Diego Hernández",
		role:  "Desarrollador Web",
		bio:   "Full-stack developer especializado en crear experiencias web únicas y funcionales.",
		image: "https://images.unsplash.com/photo-1552581234-26160f608093",
		email: "diego@agoracomunicaciones.com",
	},
}

// Team returns the team listing. Member ids are regenerated on every call;
// the site has always behaved this way and nothing downstream keys on them.
func Team() []models.TeamMember {
	out := make([]models.TeamMember, 0, len(teamEntries))
	for _, e := range teamEntries {
		out = append(out, models.TeamMember{
			ID:       uuid.New().String(),
			Name:     e.name,
			Role:     e.role,
			Bio:      e.bio,
			Image:    e.image,
			LinkedIn: "#",
			Email:    e.email,
		})
	}
	return out
}
