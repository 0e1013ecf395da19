package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	rediscache "petclinic/internal/adapters/cache/redis"
	"petclinic/internal/router"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func TestHTTP_EndToEnd_OwnerPetVisitLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Alta de owner: 201 + Location + pets vacío
	ownerID := createOwner(t, ts.URL, "Jean", "Coleman")
	{
		st, body := doReq(t, ts.URL, "GET", "/api/owners/"+ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get owner, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), `"pets":[]`) {
			t.Fatalf("expected empty pets list, body=%s", string(body))
		}
	}

	// 2) Pet type sin nombre => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/api/pettypes", map[string]any{})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 empty pet type, got %d body=%s", st, string(body))
		}
		assertError(t, body, "name is required")
	}
	typeID := createNamed(t, ts.URL, "/api/pettypes", "dog")

	// 3) Pet anidado al owner, Location canónica
	petID := ""
	{
		st, hdr, body := doRaw(t, ts.URL, "POST", "/api/owners/"+ownerID+"/pets", jsonBody(t, map[string]any{
			"name":      "Leo",
			"birthDate": "2010-09-07",
			"type":      map[string]any{"id": mustInt(t, typeID)},
		}))
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
		}
		petID = idOf(t, body)
		if got := hdr.Get("Location"); got != "/api/pets/"+petID {
			t.Fatalf("unexpected Location %q", got)
		}
	}

	// 4) PUT anidado: 204 sin cuerpo y el resto de los campos intactos
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/owners/"+ownerID+"/pets/"+petID, map[string]any{"name": "Rex"})
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 nested pet update, got %d body=%s", st, string(body))
		}
		if len(body) != 0 {
			t.Fatalf("expected empty body, got %s", string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/api/pets/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d", st)
		}
		var pet struct {
			Name      string  `json:"name"`
			BirthDate *string `json:"birthDate"`
			Type      *struct {
				ID   int64  `json:"id"`
				Name string `json:"name"`
			} `json:"type"`
		}
		_ = json.Unmarshal(body, &pet)
		if pet.Name != "Rex" || pet.BirthDate == nil || *pet.BirthDate != "2010-09-07" {
			t.Fatalf("unexpected pet after update: %s", string(body))
		}
		if pet.Type == nil || pet.Type.Name != "dog" {
			t.Fatalf("expected type to be unchanged: %s", string(body))
		}
	}

	// 5) PUT top-level: 200 con cuerpo
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/pets/"+petID, map[string]any{"birthDate": nil})
		if st != http.StatusOK {
			t.Fatalf("expected 200 pet update, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), `"birthDate":null`) {
			t.Fatalf("expected birthDate cleared, body=%s", string(body))
		}
	}

	// 6) Visit anidada sin fecha => hoy
	visitID := ""
	{
		st, hdr, body := doRaw(t, ts.URL, "POST", "/api/owners/"+ownerID+"/pets/"+petID+"/visits", jsonBody(t, map[string]any{
			"description": "rabies shot",
		}))
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create visit, got %d body=%s", st, string(body))
		}
		visitID = idOf(t, body)
		if got := hdr.Get("Location"); got != "/api/visits/"+visitID {
			t.Fatalf("unexpected Location %q", got)
		}
		var v struct {
			Date  *string `json:"date"`
			PetID int64   `json:"petId"`
		}
		_ = json.Unmarshal(body, &v)
		if v.Date == nil || !datePattern.MatchString(*v.Date) {
			t.Fatalf("expected default date, body=%s", string(body))
		}
		if strconv.FormatInt(v.PetID, 10) != petID {
			t.Fatalf("expected petId %s, body=%s", petID, string(body))
		}
	}

	// 7) Sin back-keys: los pets del owner no traen owner; las visits no traen pet
	{
		st, body := doReq(t, ts.URL, "GET", "/api/owners/"+ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get owner, got %d", st)
		}
		var o map[string]any
		_ = json.Unmarshal(body, &o)
		pets, _ := o["pets"].([]any)
		if len(pets) != 1 {
			t.Fatalf("expected 1 pet, body=%s", string(body))
		}
		pet := pets[0].(map[string]any)
		if _, ok := pet["owner"]; ok {
			t.Fatalf("pet must not embed owner: %s", string(body))
		}
		visits, _ := pet["visits"].([]any)
		if len(visits) != 1 {
			t.Fatalf("expected 1 visit, body=%s", string(body))
		}
		if _, ok := visits[0].(map[string]any)["pet"]; ok {
			t.Fatalf("visit must not embed pet: %s", string(body))
		}
	}

	// 8) includePet embebe el pet (sin visits)
	{
		st, body := doReq(t, ts.URL, "GET", "/api/visits/"+visitID+"?includePet=true", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get visit, got %d body=%s", st, string(body))
		}
		var v map[string]any
		_ = json.Unmarshal(body, &v)
		pet, ok := v["pet"].(map[string]any)
		if !ok {
			t.Fatalf("expected embedded pet: %s", string(body))
		}
		if _, ok := pet["visits"]; ok {
			t.Fatalf("embedded pet must not carry visits: %s", string(body))
		}
	}

	// 9) Borrar owner arrastra pets y visits
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/owners/"+ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete owner, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/api/pets/"+petID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 pet after cascade, got %d", st)
		}
		assertError(t, body, "Pet not found")

		st, body = doReq(t, ts.URL, "GET", "/api/visits/"+visitID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 visit after cascade, got %d", st)
		}
		assertError(t, body, "Visit not found")
	}
}

func TestHTTP_OwnersLastNamePrefix(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	createOwner(t, ts.URL, "Harold", "Davis")
	createOwner(t, ts.URL, "Betty", "davis")
	createOwner(t, ts.URL, "Peter", "McDavid")

	st, body := doReq(t, ts.URL, "GET", "/api/owners?lastName=Da", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list owners, got %d", st)
	}
	var owners []struct {
		LastName string `json:"lastName"`
	}
	_ = json.Unmarshal(body, &owners)
	if len(owners) != 2 {
		t.Fatalf("expected 2 owners for prefix Da, got %d body=%s", len(owners), string(body))
	}
	for _, o := range owners {
		if !strings.EqualFold(o.LastName, "davis") {
			t.Fatalf("unexpected owner %q", o.LastName)
		}
	}

	// un prefijo en blanco no filtra
	st, body = doReq(t, ts.URL, "GET", "/api/owners?lastName=%20", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list owners, got %d", st)
	}
	owners = nil
	_ = json.Unmarshal(body, &owners)
	if len(owners) != 3 {
		t.Fatalf("expected blank prefix to list all owners, got %d body=%s", len(owners), string(body))
	}
}

func TestHTTP_ErrorShapes(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	ownerID := createOwner(t, ts.URL, "George", "Franklin")

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		msg    string
	}{
		{"non numeric id", "GET", "/api/owners/abc", "", http.StatusNotFound, "Owner not found"},
		{"unknown id", "GET", "/api/owners/999", "", http.StatusNotFound, "Owner not found"},
		{"zero id", "GET", "/api/vets/0", "", http.StatusNotFound, "Vet not found"},
		{"invalid json", "POST", "/api/owners", "{", http.StatusBadRequest, "invalid json"},
		{"no body", "POST", "/api/owners", "", http.StatusBadRequest, "No input data provided"},
		{"empty update", "PUT", "/api/owners/" + ownerID, "{}", http.StatusBadRequest, "No input data provided"},
		{"missing field", "POST", "/api/owners", `{"firstName":"A"}`, http.StatusBadRequest, "lastName is required"},
		{"too long", "PUT", "/api/owners/" + ownerID, `{"telephone":"012345678901234567890"}`, http.StatusBadRequest, "telephone must be at most 20 characters"},
		{"update unknown owner", "PUT", "/api/owners/999", "{}", http.StatusNotFound, "Owner not found"},
		{"visit for unknown pet", "POST", "/api/visits", `{"description":"x","petId":42}`, http.StatusNotFound, "Pet not found"},
		{"visit missing pet before bad date", "POST", "/api/visits", `{"description":"x","date":"bad"}`, http.StatusBadRequest, "petId is required"},
		{"visit bad date", "POST", "/api/visits", `{"description":"x","petId":42,"date":"bad"}`, http.StatusBadRequest, "date must be YYYY-MM-DD"},
		{"nested pet of unknown owner", "GET", "/api/owners/999/pets/1", "", http.StatusNotFound, "Owner not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var rdr io.Reader
			if tc.body != "" {
				rdr = strings.NewReader(tc.body)
			}
			st, _, body := doRaw(t, ts.URL, tc.method, tc.path, rdr)
			if st != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, st, string(body))
			}
			assertError(t, body, tc.msg)
		})
	}
}

func TestHTTP_VetsSpecialties(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	radiology := createNamed(t, ts.URL, "/api/specialties", "radiology")
	createNamed(t, ts.URL, "/api/specialties", "surgery")

	// referencias inexistentes se descartan; duplicadas se colapsan
	st, body := doReq(t, ts.URL, "POST", "/api/vets", map[string]any{
		"firstName": "Linda",
		"lastName":  "Douglas",
		"specialties": []any{
			map[string]any{"id": mustInt(t, radiology)},
			map[string]any{"name": "surgery"},
			map[string]any{"name": "radiology"},
			map[string]any{"id": 999},
		},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create vet, got %d body=%s", st, string(body))
	}
	vetID := idOf(t, body)
	if n := countSpecialties(t, body); n != 2 {
		t.Fatalf("expected 2 specialties, got %d body=%s", n, string(body))
	}

	// borrar una specialty la saca del vet
	if st, _ := doReq(t, ts.URL, "DELETE", "/api/specialties/"+radiology, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete specialty, got %d", st)
	}
	st, body = doReq(t, ts.URL, "GET", "/api/vets/"+vetID, nil)
	if st != http.StatusOK || countSpecialties(t, body) != 1 {
		t.Fatalf("expected vet with 1 specialty, got %d body=%s", st, string(body))
	}

	// borrar el vet no borra specialties
	if st, _ := doReq(t, ts.URL, "DELETE", "/api/vets/"+vetID, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete vet, got %d", st)
	}
	st, body = doReq(t, ts.URL, "GET", "/api/specialties", nil)
	var specialties []map[string]any
	_ = json.Unmarshal(body, &specialties)
	if st != http.StatusOK || len(specialties) != 1 {
		t.Fatalf("expected surgery to survive, got %d body=%s", st, string(body))
	}
}

func TestHTTP_PetTypeDeleteNullsPetType(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	ownerID := createOwner(t, ts.URL, "Eduardo", "Rodriquez")
	typeID := createNamed(t, ts.URL, "/api/pettypes", "lizard")

	st, body := doReq(t, ts.URL, "POST", "/api/owners/"+ownerID+"/pets", map[string]any{
		"name": "Jewel",
		"type": mustInt(t, typeID),
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}
	petID := idOf(t, body)

	if st, _ := doReq(t, ts.URL, "DELETE", "/api/pettypes/"+typeID, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete pet type, got %d", st)
	}
	st, body = doReq(t, ts.URL, "GET", "/api/pets/"+petID, nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"type":null`) {
		t.Fatalf("expected pet with null type, got %d body=%s", st, string(body))
	}
}

func TestHTTP_WebOwnerFinder(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// sin resultados
	{
		st, _, body := doRaw(t, ts.URL, "GET", "/owners?lastName=Zz", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", st, string(body))
		}
		assertError(t, body, "No owners found")
	}

	// un único resultado => redirect al owner
	single := createOwner(t, ts.URL, "Maria", "Escobito")
	{
		st, hdr, _ := doRaw(t, ts.URL, "GET", "/owners?lastName=esc", nil)
		if st != http.StatusFound {
			t.Fatalf("expected 302, got %d", st)
		}
		if got := hdr.Get("Location"); got != "/api/owners/"+single {
			t.Fatalf("unexpected redirect %q", got)
		}
	}

	// varios resultados => página de 5 ordenada por apellido
	for _, ln := range []string{"Black", "Brown", "Baker", "Bell", "Byrd", "Banks"} {
		createOwner(t, ts.URL, "Carlos", ln)
	}
	{
		st, _, body := doRaw(t, ts.URL, "GET", "/owners?lastName=B", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		var page struct {
			Owners []struct {
				LastName string `json:"lastName"`
			} `json:"owners"`
			Page     int `json:"page"`
			PageSize int `json:"pageSize"`
			Total    int `json:"total"`
		}
		_ = json.Unmarshal(body, &page)
		if page.Total != 6 || page.PageSize != 5 || page.Page != 1 || len(page.Owners) != 5 {
			t.Fatalf("unexpected page: %s", string(body))
		}
		if page.Owners[0].LastName != "Baker" || page.Owners[1].LastName != "Banks" {
			t.Fatalf("expected ordering by last name: %s", string(body))
		}

		st, _, body = doRaw(t, ts.URL, "GET", "/owners?lastName=B&page=2", nil)
		_ = json.Unmarshal(body, &page)
		if st != http.StatusOK || page.Page != 2 || len(page.Owners) != 1 || page.Owners[0].LastName != "Byrd" {
			t.Fatalf("unexpected second page: %d %s", st, string(body))
		}

		// página fuera de rango
		st, _, body = doRaw(t, ts.URL, "GET", "/owners?lastName=B&page=9", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 past last page, got %d body=%s", st, string(body))
		}
		assertError(t, body, "No owners found")
	}
}

func TestHTTP_WebVetsUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	ts := httptest.NewServer(router.NewRouter(router.Options{
		VetCache: rediscache.NewVetCache(client, 0),
	}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/api/vets", map[string]any{"firstName": "James", "lastName": "Carter"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create vet, got %d body=%s", st, string(body))
	}

	st, _, body = doRaw(t, ts.URL, "GET", "/vets", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"vets":[`) || !strings.Contains(string(body), "Carter") {
		t.Fatalf("unexpected vets feed: %d %s", st, string(body))
	}
	if !mr.Exists("petclinic:vets:all") {
		t.Fatalf("expected vets listing to be cached")
	}

	// una mutación invalida el cache
	st, body = doReq(t, ts.URL, "POST", "/api/vets", map[string]any{"firstName": "Helen", "lastName": "Leary"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create vet, got %d body=%s", st, string(body))
	}
	if mr.Exists("petclinic:vets:all") {
		t.Fatalf("expected cache to be invalidated")
	}

	st, _, body = doRaw(t, ts.URL, "GET", "/vets", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "Leary") {
		t.Fatalf("expected fresh vets feed, got %d %s", st, string(body))
	}
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _, body := doRaw(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health: %d %s", st, string(body))
	}

	st, _, body = doRaw(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "Petclinic API") {
		t.Fatalf("unexpected swagger doc: %d", st)
	}

	var doc struct {
		BasePath string `json:"basePath"`
		Paths    map[string]map[string]struct {
			Summary    string `json:"summary"`
			Parameters []struct {
				Name string `json:"name"`
				In   string `json:"in"`
			} `json:"parameters"`
		} `json:"paths"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("swagger doc is not json: %v", err)
	}
	if doc.BasePath != "/api" {
		t.Fatalf("unexpected basePath %q", doc.BasePath)
	}
	listOwners := doc.Paths["/owners"]["get"]
	if listOwners.Summary != "Listar owners" {
		t.Fatalf("unexpected /owners summary %q", listOwners.Summary)
	}
	params := map[string]string{}
	for _, p := range listOwners.Parameters {
		params[p.Name] = p.In
	}
	if params["lastName"] != "query" || params["includePets"] != "query" {
		t.Fatalf("expected lastName and includePets query params, got %v", params)
	}
	for _, path := range []string{"/pets", "/visits/{visitID}", "/owners/{ownerID}/pets/{petID}/visits"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Fatalf("missing path %s", path)
		}
	}
	documented := map[string]bool{}
	for _, ops := range doc.Paths {
		for _, op := range ops {
			for _, p := range op.Parameters {
				documented[p.Name] = true
			}
		}
	}
	for _, name := range []string{"includeOwner", "includeVisits", "includePet", "petId"} {
		if !documented[name] {
			t.Fatalf("swagger doc does not document %s", name)
		}
	}
}

func createOwner(t *testing.T, baseURL, firstName, lastName string) string {
	t.Helper()

	st, hdr, body := doRaw(t, baseURL, "POST", "/api/owners", jsonBody(t, map[string]any{
		"firstName": firstName,
		"lastName":  lastName,
		"address":   "110 W. Liberty St.",
		"city":      "Madison",
		"telephone": "6085551023",
	}))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create owner, got %d body=%s", st, string(body))
	}
	id := idOf(t, body)
	if got := hdr.Get("Location"); got != "/api/owners/"+id {
		t.Fatalf("unexpected Location %q", got)
	}
	return id
}

func createNamed(t *testing.T, baseURL, path, name string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, map[string]any{"name": name})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}
	return idOf(t, body)
}

func idOf(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("missing id body=%s", string(body))
	}
	return strconv.FormatInt(resp.ID, 10)
}

func mustInt(t *testing.T, s string) int64 {
	t.Helper()

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		t.Fatalf("parse id %q: %v", s, err)
	}
	return n
}

func countSpecialties(t *testing.T, body []byte) int {
	t.Helper()

	var vet struct {
		Specialties []map[string]any `json:"specialties"`
	}
	if err := json.Unmarshal(body, &vet); err != nil {
		t.Fatalf("decode vet: %v body=%s", err, string(body))
	}
	return len(vet.Specialties)
}

func assertError(t *testing.T, body []byte, want string) {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Error != want {
		t.Fatalf("expected error %q, got body=%s", want, string(body))
	}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		rdr = jsonBody(t, body)
	}
	st, _, respBody := doRaw(t, baseURL, method, path, rdr)
	return st, respBody
}

// doRaw no sigue redirects (el buscador de owners responde 302).
func doRaw(t *testing.T, baseURL, method, path string, body io.Reader) (int, http.Header, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, res.Header, respBody
}
