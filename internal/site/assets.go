package site

// cssContent is the stylesheet served as style.css. Palette colours come
// from the content file through CSS variables set inline in the page head.
const cssContent = `/* ============ Variables ============ */
:root {
  --primary: #0A2E5D;
  --secondary: #C0392B;
  --accent: #F1C40F;
  --light-bg: #F4F6F9;
  --dark-text: #34495E;
  --bg: #ffffff;
  --fg: #111827;
  --muted-bg: #f9fafb;
  --card-bg: #ffffff;
  --muted-fg: #4b5563;
  --border: #e5e7eb;
  --radius: 12px;
  --shadow: 0 10px 25px rgba(0, 0, 0, 0.08);
}

html.dark {
  --bg: #111827;
  --fg: #ffffff;
  --muted-bg: #1f2937;
  --card-bg: #374151;
  --muted-fg: #d1d5db;
  --border: #374151;
  --light-bg: #111827;
}

* { box-sizing: border-box; }

html { scroll-behavior: smooth; }

body {
  margin: 0;
  font-family: system-ui, -apple-system, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--fg);
  transition: background-color 0.3s, color 0.3s;
}

a { color: inherit; text-decoration: none; }
img { max-width: 100%; display: block; }
[hidden] { display: none !important; }

.container { max-width: 1200px; margin: 0 auto; padding: 0 1rem; }
.container.narrow { max-width: 960px; }
.center { text-align: center; }

/* ============ Navigation ============ */
.topbar {
  position: fixed; top: 0; left: 0; right: 0; z-index: 50;
  background: color-mix(in srgb, var(--bg) 90%, transparent);
  backdrop-filter: blur(12px);
  border-bottom: 1px solid var(--border);
}
.topbar-inner { display: flex; align-items: center; justify-content: space-between; padding-top: 1rem; padding-bottom: 1rem; }
.logo { height: 2.5rem; object-fit: contain; }
.nav-desktop { display: flex; gap: 2rem; list-style: none; margin: 0; padding: 0; }
.nav-link:hover, .nav-link.active { color: var(--primary); }
.nav-link.active { font-weight: 600; }
html.dark .nav-link.active, html.dark .nav-link:hover { color: var(--accent); }
.nav-actions { display: flex; align-items: center; gap: 1rem; }
.theme-toggle { border: 0; border-radius: 999px; padding: 0.5rem; background: var(--muted-bg); cursor: pointer; }
.menu-toggle { display: none; border: 0; background: none; color: inherit; cursor: pointer; }
.mobile-menu { display: none; border-top: 1px solid var(--border); background: var(--bg); }
.mobile-menu.open { display: block; }
.nav-mobile { list-style: none; margin: 0; padding: 1rem; }
.nav-mobile .nav-link { display: block; padding: 0.5rem 0; }
.search { padding: 0.75rem 1rem; border-bottom: 1px solid var(--border); }
.search input { width: 100%; padding: 0.5rem 1rem; border-radius: 8px; border: 1px solid var(--border); background: var(--card-bg); color: var(--fg); }
.search-results { list-style: none; margin: 0; padding: 0; }
.search-results li a { display: block; padding: 0.4rem 0; font-size: 0.9rem; }
.search-results .summary { color: var(--muted-fg); font-size: 0.8rem; }

@media (max-width: 767px) {
  .nav-desktop { display: none; }
  .menu-toggle { display: block; }
}

/* ============ Sections ============ */
.band { padding: 5rem 0; }
.band.muted { background: var(--muted-bg); }
.band.light { background: var(--light-bg); }
.band.gradient { background: linear-gradient(to bottom, var(--bg), var(--muted-bg), var(--bg)); }
.dark-band { background: #111827; color: #ffffff; }
.section-header { text-align: center; margin-bottom: 4rem; }
.section-header h2, .band h2 { font-size: 2.25rem; color: var(--primary); margin: 0 0 1rem; }
html.dark .section-header h2, html.dark .band h2 { color: var(--accent); }
.dark-band .section-header h2 { color: #ffffff; }
.intro { font-size: 1.25rem; color: var(--muted-fg); max-width: 48rem; margin: 0 auto; }
.dark-band .intro { color: #d1d5db; }

.grid { display: grid; gap: 2rem; grid-template-columns: 1fr; }
@media (min-width: 768px) {
  .grid-2, .grid-3, .grid-4 { grid-template-columns: repeat(2, 1fr); }
  .grid-3.stats { grid-template-columns: repeat(3, 1fr); }
}
@media (min-width: 1024px) {
  .grid-3 { grid-template-columns: repeat(3, 1fr); }
  .grid-4 { grid-template-columns: repeat(4, 1fr); }
}

.card {
  display: block; background: var(--card-bg); border-radius: var(--radius);
  overflow: hidden; box-shadow: var(--shadow); transition: transform 0.3s, box-shadow 0.3s;
}
.card:hover { transform: translateY(-0.5rem); box-shadow: 0 20px 40px rgba(0, 0, 0, 0.15); }
.card-media { height: 12rem; overflow: hidden; }
.card-media img { width: 100%; height: 100%; object-fit: cover; transition: transform 0.5s; }
.card-media img:hover { transform: scale(1.1); }
.card-body { padding: 1.5rem; }
.card-body h3 { margin: 0 0 0.5rem; }
.card-body p { color: var(--muted-fg); }
.more { display: inline-block; margin-top: 1rem; color: var(--primary); font-weight: 500; }
.paper { padding: 1.5rem; border: 1px solid var(--border); }
.paper .authors { color: var(--muted-fg); font-size: 0.9rem; }
.paper .journal { font-size: 0.8rem; font-style: italic; color: #6b7280; }

/* ============ Hero ============ */
.hero { position: relative; min-height: 100vh; display: flex; align-items: center; padding-top: 6rem; overflow: hidden; }
.hero-gradient {
  position: absolute; inset: 0;
  background: linear-gradient(-45deg, var(--primary), var(--secondary), var(--accent), var(--primary));
  background-size: 400% 400%;
  animation: gradient-x 15s ease infinite;
}
@keyframes gradient-x {
  0%, 100% { background-position: 0% 50%; }
  50% { background-position: 100% 50%; }
}
.hero-body { position: relative; z-index: 1; color: #ffffff; max-width: 42rem; margin-left: max(1rem, calc((100vw - 1200px) / 2)); }
.hero-body h1 { font-size: 3.5rem; line-height: 1.1; margin: 0 0 1.5rem; text-shadow: 0 2px 8px rgba(0, 0, 0, 0.3); }
.hero-body p { font-size: 1.25rem; margin-bottom: 2rem; }
.hero-actions { display: flex; flex-wrap: wrap; gap: 1rem; }
.btn { display: inline-block; padding: 0.75rem 2rem; border-radius: 999px; border: 1px solid transparent; cursor: pointer; font-size: 1rem; }
.btn-primary { background: var(--primary); color: #ffffff; }
.btn-primary:hover { background: #08244d; }
.btn-outline { border-color: #ffffff; color: #ffffff; }
.btn.wide { width: 100%; border-radius: 8px; }

/* ============ Timeline ============ */
.timeline { position: relative; }
.timeline-line { position: absolute; left: 50%; width: 4px; height: 100%; transform: translateX(-50%); background: #bfdbfe; }
.timeline-item { display: flex; align-items: center; margin-bottom: 4rem; position: relative; }
.timeline-item.right { flex-direction: row-reverse; }
.timeline-card { width: 41.666%; padding: 1.5rem; }
.timeline-item.right .timeline-card { text-align: right; }
.timeline-dot { width: 2rem; height: 2rem; border-radius: 999px; background: var(--primary); border: 4px solid var(--bg); margin: 0 auto; }
.year { display: inline-block; padding: 0.25rem 1rem; border-radius: 999px; background: #dbeafe; color: #1e40af; font-size: 0.875rem; }

/* ============ Team ============ */
.member-banner { height: 14rem; display: flex; align-items: center; justify-content: center; background: linear-gradient(135deg, #dbeafe, #e0e7ff); color: #9ca3af; font-size: 1.5rem; }
html.dark .member-banner { background: linear-gradient(135deg, #1e3a8a, #312e81); }
.member .role { color: var(--primary); }
.member .card-body a { display: block; font-size: 0.875rem; color: var(--muted-fg); margin-top: 0.25rem; }

/* ============ Impact ============ */
.stats { max-width: 56rem; margin: 0 auto 4rem; }
.stat-value { font-size: 2.25rem; font-weight: 700; color: var(--primary); }
.stat-label { color: var(--muted-fg); }
.chart-wrap { max-width: 48rem; margin: 4rem auto 0; }
.chart { width: 100%; height: 300px; }
.chart .axis { stroke: #888888; }
.chart .tick { fill: #888888; font-size: 12px; }

/* ============ Video & gallery ============ */
.video-frame { border-radius: var(--radius); overflow: hidden; box-shadow: 0 25px 50px rgba(0, 0, 0, 0.25); }
.video-frame video { width: 100%; height: auto; }
.gallery-item { border-radius: 8px; overflow: hidden; box-shadow: var(--shadow); transition: transform 0.3s; }
.gallery-item:hover { transform: scale(1.05); }
.gallery-item img { width: 100%; height: 16rem; object-fit: cover; }

/* ============ Contact ============ */
.contact-info p { display: flex; gap: 1rem; margin-bottom: 1.5rem; }
.contact-card { background: #1f2937; padding: 2rem; border-radius: var(--radius); }
.field { margin-bottom: 1.5rem; }
.field label { display: block; font-size: 0.875rem; margin-bottom: 0.5rem; }
.field input, .field textarea {
  width: 100%; padding: 0.75rem 1rem; border-radius: 8px;
  background: #374151; border: 1px solid #4b5563; color: #ffffff; font: inherit;
}
.field input:focus, .field textarea:focus { outline: none; border-color: var(--primary); }
.form-error { background: var(--secondary); color: #ffffff; padding: 0.75rem 1rem; border-radius: 8px; }
.sent { text-align: center; padding: 2rem 0; }
.sent h4 { font-size: 1.25rem; margin: 0 0 0.5rem; color: #22c55e; }

/* ============ Footer ============ */
.help-button {
  position: fixed; bottom: 2rem; left: 2rem; z-index: 40;
  background: var(--accent); color: #000000; padding: 0.75rem 1rem; border-radius: 999px;
  box-shadow: var(--shadow); animation: bounce 1s infinite;
}
@keyframes bounce {
  0%, 100% { transform: translateY(-25%); }
  50% { transform: none; }
}
.footer { background: #111827; color: #9ca3af; padding: 3rem 0; }
.footer-inner { display: flex; flex-wrap: wrap; justify-content: space-between; align-items: center; gap: 1.5rem; }
.footer-links { display: flex; gap: 1.5rem; }
.footer-links a:hover { color: #ffffff; }
.copyright { font-size: 0.875rem; }
`

// jsContent is the browser side of a page view, served as app.js. With
// data-live="true" it reports scrolling, toggles and form input to /ws and
// renders the state the server pushes back. Without a session (static
// builds, or when the socket fails) it keeps the same behaviour locally and
// the contact form posts to /contact.
const jsContent = `(function() {
  "use strict";

  var root = document.documentElement;
  var body = document.body;
  var live = body.getAttribute("data-live") === "true";
  var MARGIN = number(body.getAttribute("data-spy-margin"), 100);
  var RESET_DELAY = number(body.getAttribute("data-reset-delay"), 3000);

  function number(v, def) {
    var n = parseFloat(v);
    return isNaN(n) ? def : n;
  }

  var themeToggle = document.getElementById("theme-toggle");
  var menuToggle = document.getElementById("menu-toggle");
  var menuIcon = document.getElementById("menu-icon");
  var menu = document.getElementById("mobile-menu");
  var form = document.getElementById("contact-form");
  var sent = document.getElementById("contact-sent");
  var navLinks = document.querySelectorAll(".nav-link");
  var counters = document.querySelectorAll(".counter");

  var sock = null;
  var connected = false;

  function send(msg) {
    if (!connected) return false;
    sock.send(JSON.stringify(msg));
    return true;
  }

  // ===== Layout & scroll-spy =====
  function layout() {
    var m = {};
    document.querySelectorAll("main section[id]").forEach(function(s) {
      var r = s.getBoundingClientRect();
      m[s.id] = { top: r.top + window.scrollY, height: r.height };
    });
    return m;
  }

  function setActive(id) {
    navLinks.forEach(function(a) {
      a.classList.toggle("active", a.getAttribute("data-section") === id);
    });
  }

  function localSpy() {
    var y = window.scrollY + MARGIN;
    var m = layout();
    var ids = Object.keys(m);
    for (var i = 0; i < ids.length; i++) {
      var e = m[ids[i]];
      if (y >= e.top && y < e.top + e.height) {
        setActive(ids[i]);
        return;
      }
    }
  }

  var pending = false;
  window.addEventListener("scroll", function() {
    if (pending) return;
    pending = true;
    window.requestAnimationFrame(function() {
      pending = false;
      if (!send({ type: "scroll", offset: window.scrollY, layout: layout() })) {
        localSpy();
      }
    });
  }, { passive: true });

  // ===== Toggles =====
  function setDark(on) {
    root.classList.toggle("dark", on);
    if (themeToggle) themeToggle.textContent = on ? "☀️" : "🌙";
  }

  function setMenu(open) {
    if (menu) menu.classList.toggle("open", open);
    if (menuIcon) menuIcon.setAttribute("d", open ? "M18 6L6 18M6 6l12 12" : "M3 12h18M3 6h18M3 18h18");
  }

  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      if (!send({ type: "toggle_dark" })) setDark(!root.classList.contains("dark"));
    });
  }

  if (menuToggle) {
    menuToggle.addEventListener("click", function() {
      if (!send({ type: "toggle_menu" })) setMenu(!menu.classList.contains("open"));
    });
  }

  navLinks.forEach(function(a) {
    a.addEventListener("click", function() {
      if (!send({ type: "navigate", section: a.getAttribute("data-section") })) setMenu(false);
    });
  });

  // ===== Contact form =====
  if (form) {
    form.querySelectorAll("input, textarea").forEach(function(el) {
      el.addEventListener("input", function() {
        send({ type: "input", field: el.name, value: el.value });
      });
    });
    form.addEventListener("submit", function(ev) {
      ev.preventDefault();
      if (!send({ type: "submit" })) localSubmit();
    });
  }

  // Without a session the stub runs in the browser: confirm, clear the
  // fields and show the form again after RESET_DELAY.
  var resetTimer = null;

  function showSent(on) {
    if (!form || !sent) return;
    form.hidden = on;
    sent.hidden = !on;
  }

  function localSubmit() {
    showSent(true);
    form.reset();
    if (resetTimer) clearTimeout(resetTimer);
    resetTimer = setTimeout(function() {
      resetTimer = null;
      showSent(false);
    }, RESET_DELAY);
  }

  function showTargets() {
    counters.forEach(function(el) {
      el.textContent = el.getAttribute("data-target");
    });
  }

  function setField(name, value) {
    var el = form && form.elements.namedItem(name);
    if (el && el.value !== value && document.activeElement !== el) el.value = value;
  }

  // ===== Session =====
  function apply(st) {
    setDark(st.dark_mode);
    setMenu(st.menu_open);
    setActive(st.active_section);
    (st.counters || []).forEach(function(c, i) {
      if (counters[i]) counters[i].textContent = String(c.value);
    });
    if (form && sent) {
      if (resetTimer) {
        clearTimeout(resetTimer);
        resetTimer = null;
      }
      showSent(st.submitted);
      setField("name", st.form.name);
      setField("email", st.form.email);
      setField("message", st.form.message);
    }
  }

  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    try {
      sock = new WebSocket(proto + location.host + "/ws" + location.search);
    } catch (e) {
      fallback();
      return;
    }
    sock.onopen = function() {
      connected = true;
      if (location.search && window.history.replaceState) {
        window.history.replaceState(null, "", location.pathname + location.hash);
      }
      send({ type: "scroll", offset: window.scrollY, layout: layout() });
    };
    sock.onmessage = function(ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch (e) { return; }
      if (msg.type === "state") apply(msg.state);
      else if (msg.type === "error") console.warn("iphase:", msg.error);
    };
    sock.onclose = function() {
      connected = false;
      fallback();
    };
  }

  // A page whose session failed keeps working locally.
  function fallback() {
    showTargets();
    if (sent && !sent.hidden && !resetTimer) {
      resetTimer = setTimeout(function() {
        resetTimer = null;
        showSent(false);
      }, RESET_DELAY);
    }
    localSpy();
  }

  if (live) connect();
  else localSpy();

  // ===== Search =====
  var searchInput = document.getElementById("search-input");
  var searchResults = document.getElementById("search-results");
  var searchIndex = null;

  fetch("search-index.json")
    .then(function(r) { return r.json(); })
    .then(function(data) { searchIndex = data; })
    .catch(function() { searchIndex = null; });

  if (searchInput && searchResults) {
    searchInput.addEventListener("input", function() {
      var query = this.value.toLowerCase().trim();
      searchResults.innerHTML = "";
      if (query === "" || !searchIndex) return;
      searchIndex.filter(function(e) {
        return e.content.toLowerCase().indexOf(query) !== -1;
      }).slice(0, 8).forEach(function(e) {
        var li = document.createElement("li");
        var a = document.createElement("a");
        a.href = "#" + e.section;
        a.textContent = e.title;
        var span = document.createElement("span");
        span.className = "summary";
        span.textContent = " " + e.summary;
        a.appendChild(span);
        a.addEventListener("click", function() {
          if (!send({ type: "navigate", section: e.section })) setMenu(false);
        });
        li.appendChild(a);
        searchResults.appendChild(li);
      });
    });
  }
})();
`
